package service

import (
	"time"

	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	relationdb "StikTube.com/cmd/relation/dal/db"
	userdb "StikTube.com/cmd/user/dal/db"
	videodb "StikTube.com/cmd/video/dal/db"
	"StikTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type ChannelRow struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Handle          string             `json:"handle"`
	Avatar          string             `json:"avatar"`
	Owner           *model.UserSummary `json:"owner"`
	SubscriberCount int64              `json:"subscriber_count"`
	FakeSubscribers int64              `json:"fake_subscribers"`
	TotalText       string             `json:"total_text"`
	VideoCount      int64              `json:"video_count"`
	CreatedAt       time.Time          `json:"created_at"`
}

type SubscriptionRow struct {
	ID        string                `json:"id"`
	User      *model.UserSummary    `json:"user"`
	Channel   *model.ChannelSummary `json:"channel"`
	CreatedAt time.Time             `json:"created_at"`
}

type UserRow struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Image             string    `json:"image"`
	SubscriptionCount int64     `json:"subscription_count"`
	CreatedAt         time.Time `json:"created_at"`
}

type AdminPanel struct {
	Channels      []*ChannelRow      `json:"channels"`
	Subscriptions []*SubscriptionRow `json:"subscriptions"`
	Users         []*UserRow         `json:"users"`
}

// AdminPanel 所有列表都按创建时间倒序
func (s *AdminService) AdminPanel(adminId string) (*AdminPanel, error) {
	if err := s.requireAdmin(adminId); err != nil {
		return nil, err
	}
	channels, err := channeldb.ListChannels(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListChannels failed")
	}
	users, err := userdb.ListUsers(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListUsers failed")
	}
	subs, err := relationdb.ListSubscriptions(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListSubscriptions failed")
	}

	channelIds := make([]string, 0, len(channels))
	channelById := make(map[string]*model.Channel, len(channels))
	for _, c := range channels {
		channelIds = append(channelIds, c.ID)
		channelById[c.ID] = c
	}
	userIds := make([]string, 0, len(users))
	userById := make(map[string]*model.User, len(users))
	for _, u := range users {
		userIds = append(userIds, u.ID)
		userById[u.ID] = u
	}

	subscribers, err := relationdb.CountSubscribersByChannels(s.ctx, channelIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribersByChannels failed")
	}
	videos, err := videodb.CountVideosByChannels(s.ctx, channelIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountVideosByChannels failed")
	}
	subscriptions, err := relationdb.CountSubscriptionsByUsers(s.ctx, userIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscriptionsByUsers failed")
	}

	userSummary := func(id string) *model.UserSummary {
		if u, ok := userById[id]; ok {
			summary := u.Summary()
			return &summary
		}
		return nil
	}

	panel := &AdminPanel{
		Channels:      make([]*ChannelRow, 0, len(channels)),
		Subscriptions: make([]*SubscriptionRow, 0, len(subs)),
		Users:         make([]*UserRow, 0, len(users)),
	}
	for _, c := range channels {
		panel.Channels = append(panel.Channels, &ChannelRow{
			ID:              c.ID,
			Name:            c.Name,
			Handle:          c.Handle,
			Avatar:          c.Avatar,
			Owner:           userSummary(c.UserID),
			SubscriberCount: subscribers[c.ID],
			FakeSubscribers: c.FakeSubscribers,
			TotalText:       utils.FormatCount(subscribers[c.ID] + c.FakeSubscribers),
			VideoCount:      videos[c.ID],
			CreatedAt:       c.CreatedAt,
		})
	}
	for _, sub := range subs {
		row := &SubscriptionRow{ID: sub.ID, User: userSummary(sub.UserID), CreatedAt: sub.CreatedAt}
		if c, ok := channelById[sub.ChannelID]; ok {
			summary := c.Summary()
			row.Channel = &summary
		}
		panel.Subscriptions = append(panel.Subscriptions, row)
	}
	for _, u := range users {
		panel.Users = append(panel.Users, &UserRow{
			ID:                u.ID,
			Email:             u.Email,
			Name:              u.Name,
			Image:             u.Image,
			SubscriptionCount: subscriptions[u.ID],
			CreatedAt:         u.CreatedAt,
		})
	}
	return panel, nil
}
