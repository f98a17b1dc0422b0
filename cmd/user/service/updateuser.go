package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"StikTube.com/cmd/model"
	"StikTube.com/cmd/user/dal/db"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/oss"
	"github.com/pkg/errors"
)

const maxNameLength = 100

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

// UpdateName 修改显示名称
func (v *UpdateUserService) UpdateName(userId, name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, errno.InvalidInputErr.WithMessage("name must be 1-100 characters")
	}
	if err := db.UpdateUser(v.ctx, userId, map[string]interface{}{"name": name}); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateUser failed")
	}
	return v.reload(userId)
}

// UpdateImage 上传头像到对象存储
func (v *UpdateUserService) UpdateImage(userId string, data []byte) (*model.User, error) {
	url, err := oss.UploadImage(v.ctx, "user", userId, data)
	if err != nil {
		return nil, err
	}
	if err = db.UpdateUser(v.ctx, userId, map[string]interface{}{"image": url}); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateUser failed")
	}
	return v.reload(userId)
}

func (v *UpdateUserService) reload(userId string) (*model.User, error) {
	user, err := db.GetUser(v.ctx, userId)
	if err != nil {
		return nil, errno.FromDB(err, "user")
	}
	return user, nil
}
