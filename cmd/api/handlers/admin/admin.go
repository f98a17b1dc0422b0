package handlers

import (
	"context"

	"StikTube.com/cmd/admin/service"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type FakeSubscribersParam struct {
	ChannelId string `json:"channelId"`
	Count     int64  `json:"count"`
}

type CreateSubscriptionParam struct {
	ChannelId string `json:"channelId"`
	UserId    string `json:"userId"`
}

type DeleteSubscriptionParam struct {
	SubscriptionId string `path:"subscriptionId"`
}

func AdminPanel(ctx context.Context, c *app.RequestContext) {
	resp, err := service.NewAdminService(ctx).AdminPanel(jwt.ViewerID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

// AdjustSubscribers count 可以为负数
func AdjustSubscribers(ctx context.Context, c *app.RequestContext) {
	var param FakeSubscribersParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	resp, err := service.NewAdminService(ctx).AdjustFakeSubscribers(jwt.ViewerID(c), param.ChannelId, param.Count)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func CreateSubscription(ctx context.Context, c *app.RequestContext) {
	var param CreateSubscriptionParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	resp, err := service.NewAdminService(ctx).AdminCreateSubscription(jwt.ViewerID(c), param.UserId, param.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func DeleteSubscription(ctx context.Context, c *app.RequestContext) {
	var param DeleteSubscriptionParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	if err := service.NewAdminService(ctx).AdminDeleteSubscription(jwt.ViewerID(c), param.SubscriptionId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
