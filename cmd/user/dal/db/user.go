package db

import (
	"context"

	"StikTube.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return nil
}

// GetUserByEmail 不存在时返回 gorm.ErrRecordNotFound
func GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUserByEmail failed, email: %s", email)
	}
	return &user, nil
}

func GetUser(ctx context.Context, userId string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("id = ?", userId).First(&user).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUser failed, userId: %s", userId)
	}
	return &user, nil
}

func CheckUserExistById(ctx context.Context, userId string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "User not exist,err:%v", err)
	}
	return count > 0, nil
}

// MGetUsers 批量查询 返回 id -> user
func MGetUsers(ctx context.Context, userIds []string) (map[string]*model.User, error) {
	res := make(map[string]*model.User, len(userIds))
	if len(userIds) == 0 {
		return res, nil
	}
	var users []*model.User
	if err := DB.WithContext(ctx).Where("id IN ?", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "MGetUsers failed,err: %v", err)
	}
	for _, u := range users {
		res[u.ID] = u
	}
	return res, nil
}

// ListUsers 管理后台使用 按注册时间倒序
func ListUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "ListUsers failed,err: %v", err)
	}
	return users, nil
}

func UpdateUser(ctx context.Context, userId string, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "Update user failed,err: %v", err)
	}
	return nil
}
