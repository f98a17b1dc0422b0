package service

import (
	"context"
	"strings"

	"StikTube.com/cmd/video/dal/db"
	"StikTube.com/cmd/video/service/convert"
	"StikTube.com/pkg/constants"
	"github.com/pkg/errors"
)

type SearchService struct {
	ctx context.Context
}

func NewSearchService(ctx context.Context) *SearchService {
	return &SearchService{ctx: ctx}
}

type SearchResult struct {
	Query  string               `json:"query"`
	Videos []*convert.VideoCard `json:"videos"`
}

// Search 空关键字直接返回空结果
func (s *SearchService) Search(query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	result := &SearchResult{Query: query, Videos: []*convert.VideoCard{}}
	if query == "" {
		return result, nil
	}
	videos, err := db.SearchVideos(s.ctx, query, constants.SearchLimit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.SearchVideos failed")
	}
	if result.Videos, err = convert.Cards(s.ctx, videos); err != nil {
		return nil, err
	}
	return result, nil
}
