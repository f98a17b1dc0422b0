package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"StikTube.com/cmd/model"
	"StikTube.com/cmd/relation/dal/db"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToggleSubscription(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, "owner")
	fan := testutil.CreateUser(t, "fan")
	channel := testutil.CreateChannel(t, owner)
	svc := NewRelationService(ctx)

	res, err := svc.ToggleSubscription(fan.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, res.Subscribed)
	assert.Equal(t, int64(1), res.SubscriberCount)

	// 频道主也可以订阅自己的频道
	res, err = svc.ToggleSubscription(owner.ID, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.SubscriberCount)

	res, err = svc.ToggleSubscription(fan.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, res.Subscribed)
	assert.Equal(t, int64(1), res.SubscriberCount)

	subscribed, err := db.IsSubscribed(ctx, fan.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)

	_, err = svc.ToggleSubscription(fan.ID, "missing")
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestToggleSubscriptionConcurrent(t *testing.T) {
	conn := testutil.NewDB(t)
	ctx := context.Background()
	fan := testutil.CreateUser(t, "fan")
	channel := testutil.CreateChannel(t, testutil.CreateUser(t, "owner"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = NewRelationService(ctx).ToggleSubscription(fan.ID, channel.ID)
		}()
	}
	wg.Wait()

	var rows int64
	require.NoError(t, conn.Model(&model.Subscription{}).Where("user_id = ? AND channel_id = ?", fan.ID, channel.ID).Count(&rows).Error)
	assert.LessOrEqual(t, rows, int64(1))
}

func TestToggleSubscriptionLostRace(t *testing.T) {
	t.Run("row inserted before create", func(t *testing.T) {
		conn := testutil.NewDB(t)
		ctx := context.Background()
		fan := testutil.CreateUser(t, "fan")
		channel := testutil.CreateChannel(t, testutil.CreateUser(t, "owner"))

		var fired atomic.Bool
		require.NoError(t, conn.Callback().Create().Before("gorm:create").Register("test:sub_insert_first", func(d *gorm.DB) {
			if d.Statement.Table != constants.SubscriptionTableName || !fired.CompareAndSwap(false, true) {
				return
			}
			other := &model.Subscription{UserID: fan.ID, ChannelID: channel.ID}
			_ = d.AddError(d.Session(&gorm.Session{NewDB: true}).Create(other).Error)
		}))

		_, err := NewRelationService(ctx).ToggleSubscription(fan.ID, channel.ID)
		assert.ErrorIs(t, err, errno.ConflictErr)
		assert.True(t, fired.Load())

		subscribed, err := db.IsSubscribed(ctx, fan.ID, channel.ID)
		require.NoError(t, err)
		assert.False(t, subscribed)
	})

	t.Run("row removed before delete", func(t *testing.T) {
		conn := testutil.NewDB(t)
		ctx := context.Background()
		fan := testutil.CreateUser(t, "fan")
		channel := testutil.CreateChannel(t, testutil.CreateUser(t, "owner"))
		svc := NewRelationService(ctx)
		_, err := svc.ToggleSubscription(fan.ID, channel.ID)
		require.NoError(t, err)

		var fired atomic.Bool
		require.NoError(t, conn.Callback().Delete().Before("gorm:delete").Register("test:sub_delete_first", func(d *gorm.DB) {
			if d.Statement.Table != constants.SubscriptionTableName || !fired.CompareAndSwap(false, true) {
				return
			}
			_ = d.AddError(d.Session(&gorm.Session{NewDB: true}).
				Where("user_id = ? AND channel_id = ?", fan.ID, channel.ID).Delete(&model.Subscription{}).Error)
		}))

		_, err = svc.ToggleSubscription(fan.ID, channel.ID)
		assert.ErrorIs(t, err, errno.ConflictErr)
		assert.True(t, fired.Load())

		// 回滚后仍然是订阅状态
		subscribed, err := db.IsSubscribed(ctx, fan.ID, channel.ID)
		require.NoError(t, err)
		assert.True(t, subscribed)
	})
}
