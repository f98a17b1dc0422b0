package handlers

import (
	"context"

	"StikTube.com/cmd/channel/service"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func CreateChannel(ctx context.Context, c *app.RequestContext) {
	var param CreateChannelParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channel, err := service.NewCreateChannelService(ctx).CreateChannel(userId, param.Name, param.Handle, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, channel)
}

func ChannelPage(ctx context.Context, c *app.RequestContext) {
	var param ChannelIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	resp, err := service.NewChannelPageService(ctx).ChannelPage(jwt.ViewerID(c), param.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

// UploadChannelImage kind=avatar|banner, multipart 字段 file
func UploadChannelImage(ctx context.Context, c *app.RequestContext) {
	var param ChannelImageParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	data, err := utils.ReadFormFile(c, "file", constants.MaxImageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channel, err := service.NewChannelImageService(ctx).UpdateChannelImage(userId, param.ChannelId, param.Kind, data)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, channel)
}

func Studio(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewStudioService(ctx).Studio(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
