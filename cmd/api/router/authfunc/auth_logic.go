package authfunc

import (
	"context"

	handlers "StikTube.com/cmd/api/handlers/user"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Auth 必须登录
func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.JwtMiddleware.MiddlewareFunc(),
	)
}

// Optional 游客可以访问, 带令牌时解析身份
func Optional() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.OptionalIdentity(),
	)
}

// Admin 必须登录且令牌中带 admin 角色
func Admin() []app.HandlerFunc {
	return append(Auth(), RequireAdminFunc())
}

func RequireAdminFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.GetIdentity(c).IsAdmin() {
			handlers.SendResponse(c, errno.NotAuthorizedErr.WithMessage("administrator only"), nil)
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
