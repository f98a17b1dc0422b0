package db

import (
	"context"

	"StikTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateChannel(ctx context.Context, channel *model.Channel) error {
	if err := DB.WithContext(ctx).Create(channel).Error; err != nil {
		return errors.Wrapf(err, "CreateChannel failed,err: %v", err)
	}
	return nil
}

func GetChannel(ctx context.Context, channelId string) (*model.Channel, error) {
	var channel model.Channel
	if err := DB.WithContext(ctx).Where("id = ?", channelId).First(&channel).Error; err != nil {
		return nil, errors.Wrapf(err, "GetChannel failed, channelId: %s", channelId)
	}
	return &channel, nil
}

// GetChannelByUser 用户没有频道时返回 nil, nil
func GetChannelByUser(ctx context.Context, userId string) (*model.Channel, error) {
	var channels []*model.Channel
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).Limit(1).Find(&channels).Error; err != nil {
		return nil, errors.Wrapf(err, "GetChannelByUser failed, userId: %s", userId)
	}
	if len(channels) == 0 {
		return nil, nil
	}
	return channels[0], nil
}

func CheckHandleExist(ctx context.Context, handle string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Channel{}).Where("handle = ?", handle).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckHandleExist failed, handle: %s", handle)
	}
	return count > 0, nil
}

func CheckChannelExist(ctx context.Context, channelId string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Channel{}).Where("id = ?", channelId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckChannelExist failed, channelId: %s", channelId)
	}
	return count > 0, nil
}

func MGetChannels(ctx context.Context, channelIds []string) (map[string]*model.Channel, error) {
	res := make(map[string]*model.Channel, len(channelIds))
	if len(channelIds) == 0 {
		return res, nil
	}
	var channels []*model.Channel
	if err := DB.WithContext(ctx).Where("id IN ?", channelIds).Find(&channels).Error; err != nil {
		return nil, errors.Wrapf(err, "MGetChannels failed,err: %v", err)
	}
	for _, c := range channels {
		res[c.ID] = c
	}
	return res, nil
}

// ListChannels 按创建时间倒序
func ListChannels(ctx context.Context) ([]*model.Channel, error) {
	var channels []*model.Channel
	if err := DB.WithContext(ctx).Order("created_at DESC").Find(&channels).Error; err != nil {
		return nil, errors.Wrapf(err, "ListChannels failed,err: %v", err)
	}
	return channels, nil
}

// UpdateChannelImage column 只能是 avatar 或 banner
func UpdateChannelImage(ctx context.Context, channelId, column, url string) error {
	if column != "avatar" && column != "banner" {
		return errors.Errorf("UpdateChannelImage: unknown column %s", column)
	}
	err := DB.WithContext(ctx).Model(&model.Channel{}).Where("id = ?", channelId).Update(column, url).Error
	if err != nil {
		return errors.Wrapf(err, "UpdateChannelImage failed, channelId: %s", channelId)
	}
	return nil
}

// AdjustFakeSubscribers 一条 UPDATE 完成加减和下限截断, 在同一事务内回读新值
func AdjustFakeSubscribers(ctx context.Context, channelId string, delta int64) (int64, error) {
	var channel model.Channel
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Channel{}).Where("id = ?", channelId).
			Update("fake_subscribers", gorm.Expr(
				"CASE WHEN fake_subscribers + ? < 0 THEN 0 ELSE fake_subscribers + ? END", delta, delta))
		if result.Error != nil {
			return errors.Wrapf(result.Error, "AdjustFakeSubscribers failed, channelId: %s", channelId)
		}
		// mysql 的 RowsAffected 只统计真正变化的行, 用回读判断频道是否存在
		if err := tx.Select("id", "fake_subscribers").Where("id = ?", channelId).First(&channel).Error; err != nil {
			return errors.Wrapf(err, "AdjustFakeSubscribers read back failed, channelId: %s", channelId)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return channel.FakeSubscribers, nil
}
