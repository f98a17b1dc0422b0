package service

import (
	"context"
	"testing"

	"StikTube.com/cmd/model"
	userdb "StikTube.com/cmd/user/dal/db"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdmin(t *testing.T) *model.User {
	t.Helper()
	admin := testutil.CreateUser(t, "admin")
	require.NoError(t, userdb.GrantRole(context.Background(), admin.ID, constants.RoleAdmin))
	return admin
}

func TestAdjustFakeSubscribers(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	admin := newAdmin(t)
	user := testutil.CreateUser(t, "user")
	channel := testutil.CreateChannel(t, user)
	svc := NewAdminService(ctx)

	res, err := svc.AdjustFakeSubscribers(admin.ID, channel.ID, -100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.FakeSubscribers)

	res, err = svc.AdjustFakeSubscribers(admin.ID, channel.ID, 15000)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), res.FakeSubscribers)

	res, err = svc.AdjustFakeSubscribers(admin.ID, channel.ID, -5000)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), res.FakeSubscribers)

	// 值不变时也要能读回
	res, err = svc.AdjustFakeSubscribers(admin.ID, channel.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), res.FakeSubscribers)

	_, err = svc.AdjustFakeSubscribers(admin.ID, "missing", 1)
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = svc.AdjustFakeSubscribers(user.ID, channel.ID, 1)
	assert.ErrorIs(t, err, errno.NotAuthorizedErr)
	_, err = svc.AdjustFakeSubscribers("", channel.ID, 1)
	assert.ErrorIs(t, err, errno.NotAuthenticatedErr)
}

func TestAdminSubscriptions(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	admin := newAdmin(t)
	user := testutil.CreateUser(t, "user")
	channel := testutil.CreateChannel(t, testutil.CreateUser(t, "owner"))
	svc := NewAdminService(ctx)

	sub, err := svc.AdminCreateSubscription(admin.ID, user.ID, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sub.UserID)

	_, err = svc.AdminCreateSubscription(admin.ID, user.ID, channel.ID)
	assert.ErrorIs(t, err, errno.ConflictErr)
	_, err = svc.AdminCreateSubscription(admin.ID, "missing", channel.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = svc.AdminCreateSubscription(admin.ID, user.ID, "missing")
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = svc.AdminCreateSubscription(user.ID, user.ID, channel.ID)
	assert.ErrorIs(t, err, errno.NotAuthorizedErr)

	panel, err := svc.AdminPanel(admin.ID)
	require.NoError(t, err)
	require.Len(t, panel.Subscriptions, 1)
	assert.Equal(t, user.ID, panel.Subscriptions[0].User.ID)
	assert.Equal(t, channel.ID, panel.Subscriptions[0].Channel.ID)
	require.Len(t, panel.Channels, 1)
	assert.Equal(t, int64(1), panel.Channels[0].SubscriberCount)
	assert.Len(t, panel.Users, 3)
	for _, u := range panel.Users {
		if u.ID == user.ID {
			assert.Equal(t, int64(1), u.SubscriptionCount)
		}
	}

	assert.ErrorIs(t, svc.AdminDeleteSubscription(user.ID, sub.ID), errno.NotAuthorizedErr)
	require.NoError(t, svc.AdminDeleteSubscription(admin.ID, sub.ID))
	assert.ErrorIs(t, svc.AdminDeleteSubscription(admin.ID, sub.ID), errno.NotFoundErr)

	_, err = svc.AdminPanel(user.ID)
	assert.ErrorIs(t, err, errno.NotAuthorizedErr)
}
