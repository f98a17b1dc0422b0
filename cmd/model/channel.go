package model

import (
	"time"

	"StikTube.com/pkg/constants"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Channel struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"size:36;not null;uniqueIndex" json:"user_id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Handle          string    `gorm:"size:30;not null;uniqueIndex" json:"handle"`
	Description     string    `gorm:"type:text" json:"description"`
	Avatar          string    `gorm:"size:512" json:"avatar"`
	Banner          string    `gorm:"size:512" json:"banner"`
	FakeSubscribers int64     `gorm:"not null;default:0" json:"fake_subscribers"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Channel) TableName() string {
	return constants.ChannelTableName
}

func (c *Channel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type ChannelSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Avatar string `json:"avatar"`
}

func (c *Channel) Summary() ChannelSummary {
	return ChannelSummary{ID: c.ID, Name: c.Name, Handle: c.Handle, Avatar: c.Avatar}
}
