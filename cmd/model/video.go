package model

import (
	"time"

	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video 只保存外部视频ID, 播放走 YouTube 的嵌入地址
type Video struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ChannelID   string    `gorm:"size:36;not null;index" json:"channel_id"`
	YoutubeID   string    `gorm:"size:11;not null" json:"youtube_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Thumbnail   string    `gorm:"size:512" json:"thumbnail"`
	Duration    int64     `gorm:"not null;default:0" json:"duration"`
	Views       int64     `gorm:"not null;default:0" json:"views"`
	IsPublic    bool      `gorm:"not null" json:"is_public"`
	IsShort     bool      `gorm:"not null" json:"is_short"`
	Tags        string    `gorm:"size:500" json:"tags"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Video) TableName() string {
	return constants.VideoTableName
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// ThumbnailURL 显式设置的封面优先, 否则使用 YouTube 的 hq 缩略图
func (v *Video) ThumbnailURL() string {
	if v.Thumbnail != "" {
		return v.Thumbnail
	}
	return utils.YoutubeThumbnail(v.YoutubeID, "hq")
}
