package handlers

import (
	"context"

	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// LoginUser 首次登录会自动注册, 返回访问令牌
func LoginUser(ctx context.Context, c *app.RequestContext) {
	jwt.JwtMiddleware.LoginHandler(ctx, c)
}

func RefreshToken(ctx context.Context, c *app.RequestContext) {
	jwt.JwtMiddleware.RefreshHandler(ctx, c)
}

func Logout(ctx context.Context, c *app.RequestContext) {
	revoked, err := jwt.Logout(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !revoked {
		hlog.CtxInfof(ctx, "token revocation disabled, logout only drops the client token")
	}
	SendResponse(c, errno.Success, map[string]bool{"revoked": revoked})
}
