package service

import (
	"context"

	interactiondb "StikTube.com/cmd/interaction/dal/db"
	"StikTube.com/cmd/video/dal/db"
	"StikTube.com/cmd/video/service/convert"
	"StikTube.com/pkg/constants"
	"github.com/pkg/errors"
)

type ShortsService struct {
	ctx context.Context
}

func NewShortsService(ctx context.Context) *ShortsService {
	return &ShortsService{ctx: ctx}
}

type ShortItem struct {
	*convert.VideoCard
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

func (s *ShortsService) Shorts() ([]*ShortItem, error) {
	videos, err := db.ListShorts(s.ctx, constants.ShortsLimit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListShorts failed")
	}
	cards, err := convert.Cards(s.ctx, videos)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	likes, err := interactiondb.CountLikesByVideos(s.ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountLikesByVideos failed")
	}
	comments, err := interactiondb.CountCommentsByVideos(s.ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountCommentsByVideos failed")
	}

	items := make([]*ShortItem, 0, len(cards))
	for _, card := range cards {
		items = append(items, &ShortItem{
			VideoCard:    card,
			LikeCount:    likes[card.ID],
			CommentCount: comments[card.ID],
		})
	}
	return items, nil
}
