package service

import (
	"context"

	"StikTube.com/cmd/video/dal/db"
	"StikTube.com/cmd/video/service/convert"
	"StikTube.com/pkg/constants"
	"github.com/pkg/errors"
)

type FeedListService struct {
	ctx context.Context
}

func NewFeedListService(ctx context.Context) *FeedListService {
	return &FeedListService{ctx: ctx}
}

// FeedList 首页 最新的公开视频
func (v *FeedListService) FeedList() ([]*convert.VideoCard, error) {
	videos, err := db.ListPublicVideos(v.ctx, "", constants.FeedLimit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListPublicVideos failed")
	}
	return convert.Cards(v.ctx, videos)
}
