package service

import (
	"context"

	"StikTube.com/cmd/video/dal/db"
	"StikTube.com/cmd/video/service/convert"
	"StikTube.com/pkg/constants"
	"github.com/pkg/errors"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// ClampLimit 非正数使用默认值, 超过上限时截断
func ClampLimit(limit int) int {
	if limit <= 0 {
		return constants.DefaultVideoLimit
	}
	if limit > constants.MaxVideoLimit {
		return constants.MaxVideoLimit
	}
	return limit
}

func (v *VideoListService) VideoList(channelId string, limit int) ([]*convert.VideoCard, error) {
	videos, err := db.ListPublicVideos(v.ctx, channelId, ClampLimit(limit))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListPublicVideos failed")
	}
	return convert.Cards(v.ctx, videos)
}
