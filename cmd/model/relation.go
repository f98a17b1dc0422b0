package model

import (
	"time"

	"StikTube.com/pkg/constants"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription 用户订阅频道 (user_id, channel_id) 唯一
type Subscription struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_sub_user_channel" json:"user_id"`
	ChannelID string    `gorm:"size:36;not null;uniqueIndex:idx_sub_user_channel;index" json:"channel_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return constants.SubscriptionTableName
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
