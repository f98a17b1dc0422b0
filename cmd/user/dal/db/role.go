package db

import (
	"context"

	"StikTube.com/cmd/model"
	"github.com/pkg/errors"
)

// GrantRole 已经拥有该角色时什么都不做
func GrantRole(ctx context.Context, userId, role string) error {
	r := model.UserRole{UserID: userId, Role: role}
	err := DB.WithContext(ctx).Where("user_id = ? AND role = ?", userId, role).FirstOrCreate(&r).Error
	if err != nil {
		return errors.Wrapf(err, "GrantRole failed, userId: %s, role: %s", userId, role)
	}
	return nil
}

func GetRoles(ctx context.Context, userId string) ([]string, error) {
	roles := make([]string, 0)
	err := DB.WithContext(ctx).Model(&model.UserRole{}).Where("user_id = ?", userId).Order("role").Pluck("role", &roles).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetRoles failed, userId: %s", userId)
	}
	return roles, nil
}

func HasRole(ctx context.Context, userId, role string) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.UserRole{}).Where("user_id = ? AND role = ?", userId, role).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "HasRole failed, userId: %s", userId)
	}
	return count > 0, nil
}
