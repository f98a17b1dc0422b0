package handlers

import (
	"context"

	"StikTube.com/cmd/video/service"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Watch 游客也可以观看, 登录后额外返回表态和订阅状态
func Watch(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	resp, err := service.NewWatchService(ctx).Watch(jwt.ViewerID(c), param.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
