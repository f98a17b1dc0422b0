package mq

import (
	"time"

	"github.com/google/uuid"
)

// 路由键 所有事件走同一个 direct 交换机
const (
	RoutingReaction     = "reaction"
	RoutingSubscription = "subscription"
	RoutingVideo        = "video"
	RoutingComment      = "comment"
	RoutingChannel      = "channel"
)

var RoutingKeys = []string{
	RoutingReaction,
	RoutingSubscription,
	RoutingVideo,
	RoutingComment,
	RoutingChannel,
}

// Meta 每个事件都带的公共字段
type Meta struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

func NewMeta(eventType string) Meta {
	return Meta{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
	}
}

// ReactionEvent 点赞/点踩 State 为 none, liked, disliked
type ReactionEvent struct {
	Meta
	UserID       string `json:"user_id"`
	VideoID      string `json:"video_id"`
	State        string `json:"state"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
}

// SubscriptionEvent 订阅 ByAdmin 表示由管理员后台发起
type SubscriptionEvent struct {
	Meta
	SubscriptionID  string `json:"subscription_id,omitempty"`
	UserID          string `json:"user_id"`
	ChannelID       string `json:"channel_id"`
	Subscribed      bool   `json:"subscribed"`
	SubscriberCount int64  `json:"subscriber_count"`
	ByAdmin         bool   `json:"by_admin"`
}

// VideoEvent Type 为 published, updated, deleted
type VideoEvent struct {
	Meta
	VideoID   string `json:"video_id"`
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
	YoutubeID string `json:"youtube_id,omitempty"`
	Title     string `json:"title,omitempty"`
}

// CommentEvent Type 为 created, deleted
type CommentEvent struct {
	Meta
	CommentID string `json:"comment_id"`
	VideoID   string `json:"video_id"`
	UserID    string `json:"user_id"`
	ParentID  string `json:"parent_id,omitempty"`
}

// ChannelEvent Type 为 created, image_updated, fake_subscribers
type ChannelEvent struct {
	Meta
	ChannelID       string `json:"channel_id"`
	UserID          string `json:"user_id"`
	Handle          string `json:"handle,omitempty"`
	FakeSubscribers int64  `json:"fake_subscribers,omitempty"`
}
