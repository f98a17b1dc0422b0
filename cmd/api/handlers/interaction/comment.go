package handlers

import (
	"context"

	"StikTube.com/cmd/interaction/service"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func CommentList(ctx context.Context, c *app.RequestContext) {
	var param CommentListParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	resp, err := service.NewCommentService(ctx).ListComments(param.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func CommentCreate(ctx context.Context, c *app.RequestContext) {
	var param CommentCreateParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewCommentService(ctx).CreateComment(userId, param.VideoId, param.Text, param.ParentId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

// CommentDelete 作者或管理员
func CommentDelete(ctx context.Context, c *app.RequestContext) {
	var param CommentDeleteParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	identity := jwt.GetIdentity(c)
	if identity == nil {
		SendResponse(c, errno.NotAuthenticatedErr, nil)
		return
	}
	if err := service.NewCommentService(ctx).DeleteComment(identity.ID, param.CommentId, identity.IsAdmin()); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
