package handlers

import (
	"context"

	"StikTube.com/cmd/user/service"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewGetUserInfoService(ctx).GetUserInfo(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
