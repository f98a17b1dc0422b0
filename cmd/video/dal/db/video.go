package db

import (
	"context"
	"strings"

	"StikTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "CreateVideo failed,err: %v", err)
	}
	return nil
}

func GetVideo(ctx context.Context, videoId string) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Where("id = ?", videoId).First(&video).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideo failed, videoId: %s", videoId)
	}
	return &video, nil
}

func CheckVideoExist(ctx context.Context, videoId string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckVideoExist failed, videoId: %s", videoId)
	}
	return count > 0, nil
}

// ListPublicVideos channelId 为空时不过滤频道, 按发布时间倒序
func ListPublicVideos(ctx context.Context, channelId string, limit int) ([]*model.Video, error) {
	var videos []*model.Video
	query := DB.WithContext(ctx).Where("is_public = ?", true)
	if channelId != "" {
		query = query.Where("channel_id = ?", channelId)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "ListPublicVideos failed,err: %v", err)
	}
	return videos, nil
}

func ListShorts(ctx context.Context, limit int) ([]*model.Video, error) {
	var videos []*model.Video
	err := DB.WithContext(ctx).Where("is_public = ? AND is_short = ?", true, true).
		Order("created_at DESC").Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListShorts failed,err: %v", err)
	}
	return videos, nil
}

// ListRelatedVideos 最新的公开视频 排除当前视频
func ListRelatedVideos(ctx context.Context, excludeId string, limit int) ([]*model.Video, error) {
	var videos []*model.Video
	err := DB.WithContext(ctx).Where("is_public = ? AND id <> ?", true, excludeId).
		Order("created_at DESC").Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListRelatedVideos failed,err: %v", err)
	}
	return videos, nil
}

// ListChannelVideos 包含私有视频, 创作者后台使用
func ListChannelVideos(ctx context.Context, channelId string) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Where("channel_id = ?", channelId).Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "ListChannelVideos failed, channelId: %s", channelId)
	}
	return videos, nil
}

// mysql 和 sqlite 对反斜杠的处理不同, 转义字符用 !
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// SearchVideos 标题、描述、标签包含关键字的公开视频 按播放量倒序
func SearchVideos(ctx context.Context, keyword string, limit int) ([]*model.Video, error) {
	var videos []*model.Video
	pattern := "%" + likeEscaper.Replace(keyword) + "%"
	err := DB.WithContext(ctx).
		Where("is_public = ?", true).
		Where(`(title LIKE ? ESCAPE '!' OR description LIKE ? ESCAPE '!' OR tags LIKE ? ESCAPE '!')`, pattern, pattern, pattern).
		Order("views DESC").Order("created_at DESC").Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, errors.Wrapf(err, "SearchVideos failed,err: %v", err)
	}
	return videos, nil
}

// IncrVideoViews 由数据库完成 views = views + 1
func IncrVideoViews(ctx context.Context, videoId string) error {
	err := DB.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return errors.Wrapf(err, "IncrVideoViews failed, videoId: %s", videoId)
	}
	return nil
}

func UpdateVideo(ctx context.Context, videoId string, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideo failed, videoId: %s", videoId)
	}
	return nil
}

// DeleteVideoWithTx 点赞和评论由调用方在同一事务里删除
func DeleteVideoWithTx(tx *gorm.DB, videoId string) error {
	if err := tx.Where("id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo failed, videoId: %s", videoId)
	}
	return nil
}

// ChannelVideoStats 一个频道的视频数和总播放量
type ChannelVideoStats struct {
	ChannelID  string
	VideoCount int64
	TotalViews int64
}

// GetChannelVideoStats publicOnly 为 true 时只统计公开视频
func GetChannelVideoStats(ctx context.Context, channelId string, publicOnly bool) (ChannelVideoStats, error) {
	stats := ChannelVideoStats{ChannelID: channelId}
	query := DB.WithContext(ctx).Model(&model.Video{}).Where("channel_id = ?", channelId)
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}
	err := query.Select("COUNT(*) AS video_count, COALESCE(SUM(views), 0) AS total_views").Scan(&stats).Error
	if err != nil {
		return stats, errors.Wrapf(err, "GetChannelVideoStats failed, channelId: %s", channelId)
	}
	return stats, nil
}

// CountVideosByChannels 返回 channel_id -> 视频数
func CountVideosByChannels(ctx context.Context, channelIds []string) (map[string]int64, error) {
	res := make(map[string]int64, len(channelIds))
	if len(channelIds) == 0 {
		return res, nil
	}
	var rows []ChannelVideoStats
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("channel_id, COUNT(*) AS video_count").
		Where("channel_id IN ?", channelIds).Group("channel_id").Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "CountVideosByChannels failed,err: %v", err)
	}
	for _, r := range rows {
		res[r.ChannelID] = r.VideoCount
	}
	return res, nil
}

func GetVideoIdsByChannel(ctx context.Context, channelId string) ([]string, error) {
	ids := make([]string, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("channel_id = ?", channelId).Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoIdsByChannel failed, channelId: %s", channelId)
	}
	return ids, nil
}
