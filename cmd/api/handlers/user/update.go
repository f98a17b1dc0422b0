package handlers

import (
	"context"

	"StikTube.com/cmd/user/service"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func UpdateUser(ctx context.Context, c *app.RequestContext) {
	var param UpdateUserParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUpdateUserService(ctx).UpdateName(userId, param.Name)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func ChangePassword(ctx context.Context, c *app.RequestContext) {
	var param ChangePasswordParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err = service.NewChangePasswordService(ctx).ChangePassword(userId, param.OldPassword, param.NewPassword); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// UploadAvatar multipart 字段 file
func UploadAvatar(ctx context.Context, c *app.RequestContext) {
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
	user, err := service.NewUpdateUserService(ctx).UpdateImage(userId, data)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
