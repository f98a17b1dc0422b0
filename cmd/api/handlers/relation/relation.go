package handlers

import (
	"context"

	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/relation/service"
	"StikTube.com/pkg/badge"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

type SubscribeParam struct {
	ChannelId string `path:"channelId"`
}

// SubscribeResponse SubscriberCount 为真实订阅数, Total 额外加上虚拟订阅
type SubscribeResponse struct {
	*service.ToggleResult
	TotalSubscribers int64      `json:"total_subscribers"`
	SubscribersText  string     `json:"subscribers_text"`
	Badge            badge.Tier `json:"badge"`
}

func Subscribe(ctx context.Context, c *app.RequestContext) {
	var param SubscribeParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	res, err := service.NewRelationService(ctx).ToggleSubscription(userId, param.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channel, err := channeldb.GetChannel(ctx, param.ChannelId)
	if err != nil {
		SendResponse(c, errno.FromDB(err, "channel"), nil)
		return
	}
	total := badge.Total(res.SubscriberCount, channel.FakeSubscribers)
	SendResponse(c, errno.Success, &SubscribeResponse{
		ToggleResult:     res,
		TotalSubscribers: total,
		SubscribersText:  utils.FormatCount(total),
		Badge:            badge.Classify(total),
	})
}
