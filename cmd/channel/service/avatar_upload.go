package service

import (
	"context"

	"StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/mq"
	"StikTube.com/pkg/oss"
	"github.com/pkg/errors"
)

const (
	ImageAvatar = "avatar"
	ImageBanner = "banner"
)

type ChannelImageService struct {
	ctx context.Context
}

func NewChannelImageService(ctx context.Context) *ChannelImageService {
	return &ChannelImageService{ctx: ctx}
}

// UpdateChannelImage 只有频道所有者可以修改头像和横幅
func (s *ChannelImageService) UpdateChannelImage(userId, channelId, kind string, data []byte) (*model.Channel, error) {
	if kind != ImageAvatar && kind != ImageBanner {
		return nil, errno.InvalidInputErr.WithMessage("kind must be avatar or banner")
	}
	channel, err := db.GetChannel(s.ctx, channelId)
	if err != nil {
		return nil, errno.FromDB(err, "channel")
	}
	if channel.UserID != userId {
		return nil, errno.NotAuthorizedErr.WithMessage("only the channel owner can change its images")
	}

	url, err := oss.UploadImage(s.ctx, "channel/"+kind, channelId, data)
	if err != nil {
		return nil, err
	}
	if err = db.UpdateChannelImage(s.ctx, channelId, kind, url); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateChannelImage failed")
	}
	if kind == ImageAvatar {
		channel.Avatar = url
	} else {
		channel.Banner = url
	}

	mq.Emit(s.ctx, mq.RoutingChannel, &mq.ChannelEvent{
		Meta:      mq.NewMeta("image_updated"),
		ChannelID: channelId,
		UserID:    userId,
	})
	return channel, nil
}
