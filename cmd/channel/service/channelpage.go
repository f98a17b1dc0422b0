package service

import (
	"context"

	"StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	relationdb "StikTube.com/cmd/relation/dal/db"
	videodb "StikTube.com/cmd/video/dal/db"
	"StikTube.com/cmd/video/service/convert"
	"StikTube.com/pkg/badge"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type ChannelPageService struct {
	ctx context.Context
}

func NewChannelPageService(ctx context.Context) *ChannelPageService {
	return &ChannelPageService{ctx: ctx}
}

type ChannelPage struct {
	Channel          *model.Channel       `json:"channel"`
	Videos           []*convert.VideoCard `json:"videos"`
	SubscriberCount  int64                `json:"subscriber_count"`
	TotalSubscribers int64                `json:"total_subscribers"`
	SubscribersText  string               `json:"subscribers_text"`
	Badge            badge.Tier           `json:"badge"`
	VideoCount       int64                `json:"video_count"`
	TotalViews       int64                `json:"total_views"`
	Subscribed       bool                 `json:"subscribed"`
	IsOwner          bool                 `json:"is_owner"`
}

// ChannelPage viewerId 为空表示未登录
func (s *ChannelPageService) ChannelPage(viewerId, channelId string) (*ChannelPage, error) {
	channel, err := db.GetChannel(s.ctx, channelId)
	if err != nil {
		return nil, errno.FromDB(err, "channel")
	}
	videos, err := videodb.ListPublicVideos(s.ctx, channelId, 0)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListPublicVideos failed")
	}
	stats, err := videodb.GetChannelVideoStats(s.ctx, channelId, true)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetChannelVideoStats failed")
	}
	subscribers, err := relationdb.CountSubscribers(s.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribers failed")
	}

	total := badge.Total(subscribers, channel.FakeSubscribers)
	page := &ChannelPage{
		Channel:          channel,
		Videos:           convert.CardsOf(videos, channel),
		SubscriberCount:  subscribers,
		TotalSubscribers: total,
		SubscribersText:  utils.FormatCount(total),
		Badge:            badge.Classify(total),
		VideoCount:       stats.VideoCount,
		TotalViews:       stats.TotalViews,
		IsOwner:          viewerId != "" && viewerId == channel.UserID,
	}
	if viewerId != "" {
		if page.Subscribed, err = relationdb.IsSubscribed(s.ctx, viewerId, channelId); err != nil {
			return nil, errors.WithMessage(err, "dao.IsSubscribed failed")
		}
	}
	return page, nil
}
