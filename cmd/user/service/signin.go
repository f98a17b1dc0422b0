package service

import (
	"context"
	"errors"
	"strings"

	"StikTube.com/cmd/model"
	"StikTube.com/cmd/user/dal/db"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

const minPasswordLength = 6

type SignInService struct {
	ctx context.Context
}

func NewSignInService(ctx context.Context) *SignInService {
	return &SignInService{ctx: ctx}
}

type SignInResult struct {
	User    *model.User
	Roles   []string
	Created bool
}

// SignIn 邮箱第一次登录时自动注册
func (s *SignInService) SignIn(email, password, name string) (*SignInResult, error) {
	email = NormalizeEmail(email)
	if !strings.Contains(email, "@") || len(email) > 255 {
		return nil, errno.InvalidInputErr.WithMessage("invalid email")
	}
	if password == "" {
		return nil, errno.InvalidInputErr.WithMessage("password is required")
	}

	user, err := db.GetUserByEmail(s.ctx, email)
	switch {
	case err == nil:
		if user.PasswordHash == "" || !utils.VerifyPassword(password, user.PasswordHash) {
			return nil, errno.NotAuthenticatedErr.WithMessage("wrong email or password")
		}
		return s.result(user, false)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.register(email, password, name)
	default:
		return nil, pkgerrors.WithMessage(err, "dao.GetUserByEmail failed")
	}
}

func (s *SignInService) register(email, password, name string) (*SignInResult, error) {
	if len(password) < minPasswordLength {
		return nil, errno.InvalidInputErr.WithMessage("password must be at least 6 characters")
	}
	hash, err := utils.Crypt(password)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "hash password failed")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}
	user := &model.User{Email: email, Name: name, PasswordHash: hash}
	if err = db.CreateUser(s.ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发注册同一个邮箱 按普通登录处理
			return s.SignIn(email, password, name)
		}
		return nil, pkgerrors.WithMessage(err, "dao.CreateUser failed")
	}
	if err = db.GrantRole(s.ctx, user.ID, constants.RoleUser); err != nil {
		return nil, pkgerrors.WithMessage(err, "dao.GrantRole failed")
	}
	hlog.CtxInfof(s.ctx, "new user registered: %s", user.ID)
	return s.result(user, true)
}

func (s *SignInService) result(user *model.User, created bool) (*SignInResult, error) {
	roles, err := db.GetRoles(s.ctx, user.ID)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "dao.GetRoles failed")
	}
	return &SignInResult{User: user, Roles: roles, Created: created}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
