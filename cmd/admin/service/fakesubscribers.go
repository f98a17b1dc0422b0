package service

import (
	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type FakeSubscribersResult struct {
	ChannelID       string `json:"channel_id"`
	FakeSubscribers int64  `json:"fake_subscribers"`
}

// AdjustFakeSubscribers delta 可以为负, 结果不会小于 0
func (s *AdminService) AdjustFakeSubscribers(adminId, channelId string, delta int64) (*FakeSubscribersResult, error) {
	if err := s.requireAdmin(adminId); err != nil {
		return nil, err
	}
	fake, err := channeldb.AdjustFakeSubscribers(s.ctx, channelId, delta)
	if err != nil {
		return nil, errno.FromDB(err, "channel")
	}

	hlog.CtxInfof(s.ctx, "admin %s adjusted fake subscribers of %s by %d -> %d", adminId, channelId, delta, fake)
	mq.Emit(s.ctx, mq.RoutingChannel, &mq.ChannelEvent{
		Meta:            mq.NewMeta("fake_subscribers"),
		ChannelID:       channelId,
		UserID:          adminId,
		FakeSubscribers: fake,
	})
	return &FakeSubscribersResult{ChannelID: channelId, FakeSubscribers: fake}, nil
}
