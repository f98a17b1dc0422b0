package handlers

import (
	"context"

	"StikTube.com/cmd/video/service"
	"StikTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func FeedList(ctx context.Context, c *app.RequestContext) {
	resp, err := service.NewFeedListService(ctx).FeedList()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func VideoList(ctx context.Context, c *app.RequestContext) {
	var param VideoListParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	resp, err := service.NewVideoListService(ctx).VideoList(param.ChannelId, param.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func Shorts(ctx context.Context, c *app.RequestContext) {
	resp, err := service.NewShortsService(ctx).Shorts()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func Search(ctx context.Context, c *app.RequestContext) {
	var param SearchParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	resp, err := service.NewSearchService(ctx).Search(param.Q)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
