package handlers

import (
	"context"

	"StikTube.com/cmd/video/service"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func Publish(ctx context.Context, c *app.RequestContext) {
	var param PublishParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewPublishService(ctx).Publish(userId, &service.PublishRequest{
		Input:       param.Input,
		Title:       param.Title,
		Description: param.Description,
		Tags:        param.Tags,
		IsShort:     param.IsShort,
		Duration:    param.Duration,
		Thumbnail:   param.Thumbnail,
		IsPublic:    param.IsPublic,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var param UpdateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewVideoUpdateService(ctx).UpdateVideo(userId, param.VideoId, &service.UpdateRequest{
		Title:       param.Title,
		Description: param.Description,
		Tags:        param.Tags,
		Thumbnail:   param.Thumbnail,
		IsPublic:    param.IsPublic,
		IsShort:     param.IsShort,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

// DeleteVideo 频道所有者或管理员
func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	identity := jwt.GetIdentity(c)
	if identity == nil {
		SendResponse(c, errno.NotAuthenticatedErr, nil)
		return
	}
	if err := service.NewVideoUpdateService(ctx).DeleteVideo(identity.ID, param.VideoId, identity.IsAdmin()); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
