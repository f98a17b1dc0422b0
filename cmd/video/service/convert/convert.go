package convert

import (
	"context"
	"strings"
	"time"

	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	"StikTube.com/pkg/utils"
	"github.com/pkg/errors"
)

// VideoCard 列表中展示的视频
type VideoCard struct {
	ID            string                `json:"id"`
	YoutubeID     string                `json:"youtube_id"`
	Title         string                `json:"title"`
	Thumbnail     string                `json:"thumbnail"`
	Duration      int64                 `json:"duration"`
	DurationText  string                `json:"duration_text"`
	Views         int64                 `json:"views"`
	ViewsText     string                `json:"views_text"`
	IsPublic      bool                  `json:"is_public"`
	IsShort       bool                  `json:"is_short"`
	CreatedAt     time.Time             `json:"created_at"`
	PublishedText string                `json:"published_text"`
	Channel       *model.ChannelSummary `json:"channel,omitempty"`
}

// VideoDetail 观看页使用 额外带描述和标签
type VideoDetail struct {
	VideoCard
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	EmbedURL    string   `json:"embed_url"`
}

func Card(v *model.Video, channel *model.Channel) *VideoCard {
	card := &VideoCard{
		ID:            v.ID,
		YoutubeID:     v.YoutubeID,
		Title:         v.Title,
		Thumbnail:     v.ThumbnailURL(),
		Duration:      v.Duration,
		DurationText:  utils.FormatDuration(v.Duration),
		Views:         v.Views,
		ViewsText:     utils.FormatCount(v.Views),
		IsPublic:      v.IsPublic,
		IsShort:       v.IsShort,
		CreatedAt:     v.CreatedAt,
		PublishedText: utils.FormatRelativeTime(v.CreatedAt),
	}
	if channel != nil {
		summary := channel.Summary()
		card.Channel = &summary
	}
	return card
}

func Detail(v *model.Video, channel *model.Channel) *VideoDetail {
	return &VideoDetail{
		VideoCard:   *Card(v, channel),
		Description: v.Description,
		Tags:        SplitTags(v.Tags),
		EmbedURL:    utils.YoutubeEmbedURL(v.YoutubeID),
	}
}

// Cards 批量查询频道后组装
func Cards(ctx context.Context, videos []*model.Video) ([]*VideoCard, error) {
	ids := make([]string, 0, len(videos))
	seen := make(map[string]bool)
	for _, v := range videos {
		if !seen[v.ChannelID] {
			seen[v.ChannelID] = true
			ids = append(ids, v.ChannelID)
		}
	}
	channels, err := channeldb.MGetChannels(ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.MGetChannels failed")
	}
	result := make([]*VideoCard, 0, len(videos))
	for _, v := range videos {
		result = append(result, Card(v, channels[v.ChannelID]))
	}
	return result, nil
}

// CardsOf 同一个频道的视频
func CardsOf(videos []*model.Video, channel *model.Channel) []*VideoCard {
	result := make([]*VideoCard, 0, len(videos))
	for _, v := range videos {
		result = append(result, Card(v, channel))
	}
	return result
}

// SplitTags 逗号分隔 去掉空白和空项
func SplitTags(tags string) []string {
	result := make([]string, 0)
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			result = append(result, t)
		}
	}
	return result
}

// JoinTags 与 SplitTags 相反 用于保存
func JoinTags(tags []string) string {
	return strings.Join(SplitTags(strings.Join(tags, ",")), ",")
}
