package service

import (
	"context"
	"testing"

	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/user/dal/db"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/testutil"
	"StikTube.com/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIn(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	svc := NewSignInService(ctx)

	first, err := svc.SignIn("  Alice@Example.COM ", "secret123", "")
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "alice@example.com", first.User.Email)
	assert.Equal(t, "alice", first.User.Name)
	assert.Equal(t, []string{constants.RoleUser}, first.Roles)

	t.Run("second sign in finds the same user", func(t *testing.T) {
		again, err := svc.SignIn("alice@example.com", "secret123", "ignored")
		require.NoError(t, err)
		assert.False(t, again.Created)
		assert.Equal(t, first.User.ID, again.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.SignIn("alice@example.com", "nope-nope", "")
		assert.ErrorIs(t, err, errno.NotAuthenticatedErr)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := svc.SignIn("not-an-email", "secret123", "")
		assert.ErrorIs(t, err, errno.InvalidInputErr)
		_, err = svc.SignIn("bob@example.com", "", "")
		assert.ErrorIs(t, err, errno.InvalidInputErr)
		_, err = svc.SignIn("bob@example.com", "123", "")
		assert.ErrorIs(t, err, errno.InvalidInputErr)
	})
}

func TestEnsureAdmin(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	hash, err := utils.Crypt("admin-pass")
	require.NoError(t, err)

	svc := NewAdminBootstrapService(ctx)
	admin, err := svc.EnsureAdmin("admin@stiktube.test", hash, "Admin")
	require.NoError(t, err)

	// 再执行一次不应出错也不应重复创建
	again, err := svc.EnsureAdmin("admin@stiktube.test", hash, "Admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)

	isAdmin, err := db.HasRole(ctx, admin.ID, constants.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	channel, err := channeldb.GetChannelByUser(ctx, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, channel)
	assert.Equal(t, constants.OfficialChannelHandle, channel.Handle)

	res, err := NewSignInService(ctx).SignIn("admin@stiktube.test", "admin-pass", "")
	require.NoError(t, err)
	assert.Contains(t, res.Roles, constants.RoleAdmin)

	info, err := NewGetUserInfoService(ctx).GetUserInfo(admin.ID)
	require.NoError(t, err)
	assert.True(t, info.IsAdmin)
	require.NotNil(t, info.Channel)
	assert.Equal(t, constants.OfficialChannelName, info.Channel.Name)
}

func TestEnsureAdminWithoutEmail(t *testing.T) {
	testutil.NewDB(t)
	user, err := NewAdminBootstrapService(context.Background()).EnsureAdmin("", "", "")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestChangePasswordAndName(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	res, err := NewSignInService(ctx).SignIn("carol@example.com", "first-pass", "Carol")
	require.NoError(t, err)
	userId := res.User.ID

	svc := NewChangePasswordService(ctx)
	assert.ErrorIs(t, svc.ChangePassword(userId, "wrong-pass", "second-pass"), errno.NotAuthenticatedErr)
	assert.ErrorIs(t, svc.ChangePassword(userId, "first-pass", "123"), errno.InvalidInputErr)
	require.NoError(t, svc.ChangePassword(userId, "first-pass", "second-pass"))

	_, err = NewSignInService(ctx).SignIn("carol@example.com", "second-pass", "")
	assert.NoError(t, err)

	user, err := NewUpdateUserService(ctx).UpdateName(userId, "  Carol B ")
	require.NoError(t, err)
	assert.Equal(t, "Carol B", user.Name)

	_, err = NewUpdateUserService(ctx).UpdateName(userId, "   ")
	assert.ErrorIs(t, err, errno.InvalidInputErr)
}

func TestGetUserInfoNotFound(t *testing.T) {
	testutil.NewDB(t)
	_, err := NewGetUserInfoService(context.Background()).GetUserInfo("missing")
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
