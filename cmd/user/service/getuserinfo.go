package service

import (
	"context"

	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	"StikTube.com/cmd/user/dal/db"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

type UserInfo struct {
	User    *model.User           `json:"user"`
	Roles   []string              `json:"roles"`
	IsAdmin bool                  `json:"is_admin"`
	Channel *model.ChannelSummary `json:"channel"`
}

func (v *GetUserInfoService) GetUserInfo(userId string) (*UserInfo, error) {
	user, err := db.GetUser(v.ctx, userId)
	if err != nil {
		hlog.CtxInfof(v.ctx, "GetUserInfo: %v", err)
		return nil, errno.FromDB(err, "user")
	}
	roles, err := db.GetRoles(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetRoles failed")
	}
	info := &UserInfo{User: user, Roles: roles}
	for _, r := range roles {
		if r == constants.RoleAdmin {
			info.IsAdmin = true
		}
	}
	channel, err := channeldb.GetChannelByUser(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetChannelByUser failed")
	}
	if channel != nil {
		summary := channel.Summary()
		info.Channel = &summary
	}
	return info, nil
}
