package service

import (
	"context"
	"errors"

	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	"StikTube.com/cmd/user/dal/db"
	"StikTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type AdminBootstrapService struct {
	ctx context.Context
}

func NewAdminBootstrapService(ctx context.Context) *AdminBootstrapService {
	return &AdminBootstrapService{ctx: ctx}
}

// EnsureAdmin 启动时执行 可重复调用
// 创建或更新管理员账号, 授予 admin 角色, 没有频道时创建官方频道
func (s *AdminBootstrapService) EnsureAdmin(email, passwordHash, name string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, nil
	}
	user, err := db.GetUserByEmail(s.ctx, email)
	switch {
	case err == nil:
		if passwordHash != "" && user.PasswordHash != passwordHash {
			if err = db.UpdateUser(s.ctx, user.ID, map[string]interface{}{"password_hash": passwordHash}); err != nil {
				return nil, pkgerrors.WithMessage(err, "update admin password failed")
			}
			user.PasswordHash = passwordHash
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &model.User{Email: email, Name: name, PasswordHash: passwordHash}
		if err = db.CreateUser(s.ctx, user); err != nil {
			return nil, pkgerrors.WithMessage(err, "create admin user failed")
		}
	default:
		return nil, pkgerrors.WithMessage(err, "dao.GetUserByEmail failed")
	}

	for _, role := range []string{constants.RoleUser, constants.RoleAdmin} {
		if err = db.GrantRole(s.ctx, user.ID, role); err != nil {
			return nil, err
		}
	}

	channel, err := channeldb.GetChannelByUser(s.ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		channel = &model.Channel{
			UserID:      user.ID,
			Name:        constants.OfficialChannelName,
			Handle:      constants.OfficialChannelHandle,
			Description: "Official StikTube channel",
		}
		if err = channeldb.CreateChannel(s.ctx, channel); err != nil {
			// handle 已被其他用户占用时不影响启动
			hlog.CtxWarnf(s.ctx, "create official channel failed: %v", err)
		}
	}
	hlog.CtxInfof(s.ctx, "admin account ready: %s", user.Email)
	return user, nil
}
