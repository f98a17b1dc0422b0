package service

import (
	"context"

	"StikTube.com/cmd/channel/dal/db"
	interactiondb "StikTube.com/cmd/interaction/dal/db"
	"StikTube.com/cmd/model"
	relationdb "StikTube.com/cmd/relation/dal/db"
	videodb "StikTube.com/cmd/video/dal/db"
	"StikTube.com/cmd/video/service/convert"
	"github.com/pkg/errors"
)

type StudioService struct {
	ctx context.Context
}

func NewStudioService(ctx context.Context) *StudioService {
	return &StudioService{ctx: ctx}
}

// StudioDashboard 创作者后台 统计包含私有视频
type StudioDashboard struct {
	HasChannel      bool                 `json:"has_channel"`
	Channel         *model.Channel       `json:"channel,omitempty"`
	SubscriberCount int64                `json:"subscriber_count"`
	VideoCount      int64                `json:"video_count"`
	TotalViews      int64                `json:"total_views"`
	TotalLikes      int64                `json:"total_likes"`
	Videos          []*convert.VideoCard `json:"videos"`
}

func (s *StudioService) Studio(userId string) (*StudioDashboard, error) {
	channel, err := db.GetChannelByUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetChannelByUser failed")
	}
	if channel == nil {
		return &StudioDashboard{HasChannel: false, Videos: []*convert.VideoCard{}}, nil
	}

	videos, err := videodb.ListChannelVideos(s.ctx, channel.ID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListChannelVideos failed")
	}
	ids := make([]string, 0, len(videos))
	var views int64
	for _, v := range videos {
		ids = append(ids, v.ID)
		views += v.Views
	}
	likes, err := interactiondb.CountTotalLikes(s.ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountTotalLikes failed")
	}
	subscribers, err := relationdb.CountSubscribers(s.ctx, channel.ID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribers failed")
	}

	return &StudioDashboard{
		HasChannel:      true,
		Channel:         channel,
		SubscriberCount: subscribers,
		VideoCount:      int64(len(videos)),
		TotalViews:      views,
		TotalLikes:      likes,
		Videos:          convert.CardsOf(videos, channel),
	}, nil
}
