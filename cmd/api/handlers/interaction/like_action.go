package handlers

import (
	"context"

	"StikTube.com/cmd/interaction/service"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// LikeAction isLike=true 点赞 false 点踩, 重复提交取消
func LikeAction(ctx context.Context, c *app.RequestContext) {
	var param LikeParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	if param.IsLike == nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage("isLike is required"), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewLikeActionService(ctx).SetReaction(userId, param.VideoId, *param.IsLike)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
