package db

import (
	"context"

	"StikTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSubscriptionWithTx 事务内加行锁读取, 没有订阅时返回 nil, nil
func GetSubscriptionWithTx(tx *gorm.DB, userId, channelId string) (*model.Subscription, error) {
	return findSubscription(tx.Clauses(clause.Locking{Strength: "UPDATE"}), userId, channelId)
}

func findSubscription(tx *gorm.DB, userId, channelId string) (*model.Subscription, error) {
	var subs []*model.Subscription
	if err := tx.Where("user_id = ? AND channel_id = ?", userId, channelId).Limit(1).Find(&subs).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscription failed, userId: %s, channelId: %s", userId, channelId)
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return subs[0], nil
}

func CreateSubscriptionWithTx(tx *gorm.DB, sub *model.Subscription) error {
	if err := tx.Create(sub).Error; err != nil {
		return errors.Wrapf(err, "CreateSubscription failed,err: %v", err)
	}
	return nil
}

// DeleteSubscriptionWithTx 订阅已不存在时返回 gorm.ErrRecordNotFound
func DeleteSubscriptionWithTx(tx *gorm.DB, subscriptionId string) error {
	result := tx.Where("id = ?", subscriptionId).Delete(&model.Subscription{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "DeleteSubscription failed, subscriptionId: %s", subscriptionId)
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(gorm.ErrRecordNotFound, "DeleteSubscription failed, subscriptionId: %s", subscriptionId)
	}
	return nil
}

func CountSubscribersWithTx(tx *gorm.DB, channelId string) (int64, error) {
	var count int64
	if err := tx.Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountSubscribers failed, channelId: %s", channelId)
	}
	return count, nil
}

// CountSubscribers 只统计真实订阅
func CountSubscribers(ctx context.Context, channelId string) (int64, error) {
	return CountSubscribersWithTx(DB.WithContext(ctx), channelId)
}

func IsSubscribed(ctx context.Context, userId, channelId string) (bool, error) {
	sub, err := findSubscription(DB.WithContext(ctx), userId, channelId)
	if err != nil {
		return false, err
	}
	return sub != nil, nil
}

func GetSubscription(ctx context.Context, subscriptionId string) (*model.Subscription, error) {
	var sub model.Subscription
	if err := DB.WithContext(ctx).Where("id = ?", subscriptionId).First(&sub).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscription failed, subscriptionId: %s", subscriptionId)
	}
	return &sub, nil
}

func CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	return CreateSubscriptionWithTx(DB.WithContext(ctx), sub)
}

func DeleteSubscription(ctx context.Context, subscriptionId string) error {
	return DeleteSubscriptionWithTx(DB.WithContext(ctx), subscriptionId)
}

// ListSubscriptions 管理后台 最新的在前
func ListSubscriptions(ctx context.Context) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	if err := DB.WithContext(ctx).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, errors.Wrapf(err, "ListSubscriptions failed,err: %v", err)
	}
	return subs, nil
}

type groupCount struct {
	GroupKey string
	Total    int64
}

func countGroupBy(ctx context.Context, column string, ids []string) (map[string]int64, error) {
	res := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	var rows []groupCount
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Select(column+" AS group_key, COUNT(*) AS total").
		Where(column+" IN ?", ids).Group(column).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "count subscriptions by %s failed,err: %v", column, err)
	}
	for _, r := range rows {
		res[r.GroupKey] = r.Total
	}
	return res, nil
}

// CountSubscribersByChannels channel_id -> 真实订阅数
func CountSubscribersByChannels(ctx context.Context, channelIds []string) (map[string]int64, error) {
	return countGroupBy(ctx, "channel_id", channelIds)
}

// CountSubscriptionsByUsers user_id -> 订阅了多少频道
func CountSubscriptionsByUsers(ctx context.Context, userIds []string) (map[string]int64, error) {
	return countGroupBy(ctx, "user_id", userIds)
}
