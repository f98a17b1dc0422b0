package service

import (
	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	relationdb "StikTube.com/cmd/relation/dal/db"
	userdb "StikTube.com/cmd/user/dal/db"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/mq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AdminCreateSubscription 代替用户订阅频道, 已订阅时返回 Conflict
func (s *AdminService) AdminCreateSubscription(adminId, userId, channelId string) (*model.Subscription, error) {
	if err := s.requireAdmin(adminId); err != nil {
		return nil, err
	}
	exist, err := userdb.CheckUserExistById(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckUserExistById failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}
	if exist, err = channeldb.CheckChannelExist(s.ctx, channelId); err != nil {
		return nil, errors.WithMessage(err, "dao.CheckChannelExist failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("channel not found")
	}

	sub := &model.Subscription{UserID: userId, ChannelID: channelId}
	if err = relationdb.CreateSubscription(s.ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.ConflictErr.WithMessage("already subscribed")
		}
		return nil, errors.WithMessage(err, "dao.CreateSubscription failed")
	}

	mq.Emit(s.ctx, mq.RoutingSubscription, &mq.SubscriptionEvent{
		Meta:           mq.NewMeta("created"),
		SubscriptionID: sub.ID,
		UserID:         userId,
		ChannelID:      channelId,
		Subscribed:     true,
		ByAdmin:        true,
	})
	return sub, nil
}

func (s *AdminService) AdminDeleteSubscription(adminId, subscriptionId string) error {
	if err := s.requireAdmin(adminId); err != nil {
		return err
	}
	sub, err := relationdb.GetSubscription(s.ctx, subscriptionId)
	if err != nil {
		return errno.FromDB(err, "subscription")
	}
	if err = relationdb.DeleteSubscription(s.ctx, subscriptionId); err != nil {
		return errno.FromDB(err, "subscription")
	}

	mq.Emit(s.ctx, mq.RoutingSubscription, &mq.SubscriptionEvent{
		Meta:           mq.NewMeta("deleted"),
		SubscriptionID: subscriptionId,
		UserID:         sub.UserID,
		ChannelID:      sub.ChannelID,
		ByAdmin:        true,
	})
	return nil
}
