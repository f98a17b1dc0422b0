package service

import (
	"context"

	"StikTube.com/cmd/interaction/dal/db"
	"StikTube.com/cmd/model"
	videodb "StikTube.com/cmd/video/dal/db"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/lock"
	"StikTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	StateNone     = "none"
	StateLiked    = "liked"
	StateDisliked = "disliked"
)

type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

type ReactionResult struct {
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
	State        string `json:"state"`
}

// SetReaction 再次点同一个按钮取消表态, 点另一个按钮切换表态
func (service *LikeActionService) SetReaction(userId, videoId string, wantLike bool) (*ReactionResult, error) {
	exist, err := videodb.CheckVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckVideoExist failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	unlock := lock.Acquire(service.ctx, lock.Key("like", userId, videoId))
	defer unlock()

	res := &ReactionResult{}
	err = db.DB.WithContext(service.ctx).Transaction(func(tx *gorm.DB) error {
		like, err := db.GetLikeWithTx(tx, userId, videoId)
		if err != nil {
			return err
		}
		switch {
		case like == nil:
			if err = db.CreateLikeWithTx(tx, &model.Like{UserID: userId, VideoID: videoId, IsLike: wantLike}); err != nil {
				return err
			}
			res.State = stateOf(wantLike)
		case like.IsLike == wantLike:
			if err = db.DeleteLikeWithTx(tx, like.ID); err != nil {
				return err
			}
			res.State = StateNone
		default:
			if err = db.UpdateLikeWithTx(tx, like.ID, wantLike); err != nil {
				return err
			}
			res.State = stateOf(wantLike)
		}
		res.LikeCount, res.DislikeCount, err = db.CountReactionsWithTx(tx, videoId)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.ConflictErr.WithMessage("reaction changed concurrently, please retry")
		}
		return nil, errors.WithMessage(err, "set reaction failed")
	}

	hlog.CtxDebugf(service.ctx, "user %s reaction on %s -> %s", userId, videoId, res.State)
	mq.Emit(service.ctx, mq.RoutingReaction, &mq.ReactionEvent{
		Meta:         mq.NewMeta("reaction"),
		UserID:       userId,
		VideoID:      videoId,
		State:        res.State,
		LikeCount:    res.LikeCount,
		DislikeCount: res.DislikeCount,
	})
	return res, nil
}

func stateOf(isLike bool) string {
	if isLike {
		return StateLiked
	}
	return StateDisliked
}
