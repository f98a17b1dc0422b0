package model

import (
	"time"

	"StikTube.com/pkg/constants"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like 同一用户对同一视频最多一行, IsLike=false 表示踩
type Like struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_like_user_video" json:"user_id"`
	VideoID   string    `gorm:"size:36;not null;uniqueIndex:idx_like_user_video;index" json:"video_id"`
	IsLike    bool      `gorm:"not null" json:"is_like"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Like) TableName() string {
	return constants.LikeTableName
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Comment ParentID 为空表示一级评论, 回复只有一层
type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null" json:"user_id"`
	VideoID   string    `gorm:"size:36;not null;index" json:"video_id"`
	ParentID  *string   `gorm:"size:36;index" json:"parent_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return constants.CommentTableName
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
