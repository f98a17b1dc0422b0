package service

import (
	"context"

	"StikTube.com/cmd/user/dal/db"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type ChangePasswordService struct {
	ctx context.Context
}

func NewChangePasswordService(ctx context.Context) *ChangePasswordService {
	return &ChangePasswordService{ctx: ctx}
}

func (s *ChangePasswordService) ChangePassword(userId, oldPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errno.InvalidInputErr.WithMessage("password must be at least 6 characters")
	}
	if oldPassword == newPassword {
		return errno.InvalidInputErr.WithMessage("new password must differ from the old one")
	}

	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return errno.FromDB(err, "user")
	}
	if !utils.VerifyPassword(oldPassword, user.PasswordHash) {
		return errno.NotAuthenticatedErr.WithMessage("wrong password")
	}

	hashed, err := utils.Crypt(newPassword)
	if err != nil {
		return errors.WithMessage(err, "hash password failed")
	}
	if err = db.UpdateUser(s.ctx, userId, map[string]interface{}{"password_hash": hashed}); err != nil {
		return errors.WithMessage(err, "dao.UpdateUser failed")
	}

	hlog.CtxInfof(s.ctx, "user %s changed password", userId)
	return nil
}
