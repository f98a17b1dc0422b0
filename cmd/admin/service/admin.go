package service

import (
	"context"

	userdb "StikTube.com/cmd/user/dal/db"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type AdminService struct {
	ctx context.Context
}

func NewAdminService(ctx context.Context) *AdminService {
	return &AdminService{ctx: ctx}
}

// requireAdmin 中间件已经校验过 token 中的角色, 这里以数据库为准再查一次
func (s *AdminService) requireAdmin(userId string) error {
	if userId == "" {
		return errno.NotAuthenticatedErr
	}
	ok, err := userdb.HasRole(s.ctx, userId, constants.RoleAdmin)
	if err != nil {
		return errors.WithMessage(err, "dao.HasRole failed")
	}
	if !ok {
		return errno.NotAuthorizedErr.WithMessage("administrator only")
	}
	return nil
}
