package service

import (
	"context"

	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	"StikTube.com/cmd/relation/dal/db"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/lock"
	"StikTube.com/pkg/mq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleResult SubscriberCount 只包含真实订阅
type ToggleResult struct {
	Subscribed      bool  `json:"subscribed"`
	SubscriberCount int64 `json:"subscriber_count"`
}

// ToggleSubscription 已订阅则取消, 否则订阅
func (service *RelationService) ToggleSubscription(userId, channelId string) (*ToggleResult, error) {
	exist, err := channeldb.CheckChannelExist(service.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckChannelExist failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("channel not found")
	}

	unlock := lock.Acquire(service.ctx, lock.Key("subscribe", userId, channelId))
	defer unlock()

	res := &ToggleResult{}
	err = db.DB.WithContext(service.ctx).Transaction(func(tx *gorm.DB) error {
		sub, err := db.GetSubscriptionWithTx(tx, userId, channelId)
		if err != nil {
			return err
		}
		if sub != nil {
			err = db.DeleteSubscriptionWithTx(tx, sub.ID)
		} else {
			err = db.CreateSubscriptionWithTx(tx, &model.Subscription{UserID: userId, ChannelID: channelId})
			res.Subscribed = true
		}
		if err != nil {
			return err
		}
		res.SubscriberCount, err = db.CountSubscribersWithTx(tx, channelId)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.ConflictErr.WithMessage("subscription changed concurrently, please retry")
		}
		return nil, errors.WithMessage(err, "toggle subscription failed")
	}

	mq.Emit(service.ctx, mq.RoutingSubscription, &mq.SubscriptionEvent{
		Meta:            mq.NewMeta("toggled"),
		UserID:          userId,
		ChannelID:       channelId,
		Subscribed:      res.Subscribed,
		SubscriberCount: res.SubscriberCount,
	})
	return res, nil
}
