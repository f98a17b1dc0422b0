package service

import (
	"context"
	"io"
	"testing"

	"StikTube.com/cmd/interaction/dal/db"
	"StikTube.com/cmd/model"
	relationdb "StikTube.com/cmd/relation/dal/db"
	"StikTube.com/pkg/badge"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/oss"
	"StikTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateChannel(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, "creator")
	svc := NewCreateChannelService(ctx)

	channel, err := svc.CreateChannel(user.ID, " My Channel ", "@My_Handle", " about ")
	require.NoError(t, err)
	assert.Equal(t, "My Channel", channel.Name)
	assert.Equal(t, "my_handle", channel.Handle)
	assert.Equal(t, "about", channel.Description)

	_, err = svc.CreateChannel(user.ID, "Second", "second", "")
	assert.ErrorIs(t, err, errno.ConflictErr)

	other := testutil.CreateUser(t, "other")
	_, err = svc.CreateChannel(other.ID, "Other", "MY_HANDLE", "")
	assert.ErrorIs(t, err, errno.ConflictErr)

	for _, handle := range []string{"ab", "has space", "ümlaut", ""} {
		_, err = svc.CreateChannel(other.ID, "Other", handle, "")
		assert.ErrorIs(t, err, errno.InvalidInputErr, "handle %q", handle)
	}
	_, err = svc.CreateChannel(other.ID, "   ", "valid_handle", "")
	assert.ErrorIs(t, err, errno.InvalidInputErr)
}

type memStore struct {
	objects map[string][]byte
}

func (m *memStore) PutImage(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.objects[objectName] = data
	return "http://img.test/" + objectName, nil
}

// 最小的 png 文件头, 足以被识别为 image/png
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestUpdateChannelImage(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	store := &memStore{objects: map[string][]byte{}}
	oss.Store = store
	t.Cleanup(func() { oss.Store = nil })

	owner := testutil.CreateUser(t, "owner")
	channel := testutil.CreateChannel(t, owner)
	svc := NewChannelImageService(ctx)

	updated, err := svc.UpdateChannelImage(owner.ID, channel.ID, ImageAvatar, pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "http://img.test/channel/avatar/"+channel.ID+".png", updated.Avatar)
	assert.Contains(t, store.objects, "channel/avatar/"+channel.ID+".png")

	page, err := NewChannelPageService(ctx).ChannelPage("", channel.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Avatar, page.Channel.Avatar)

	_, err = svc.UpdateChannelImage(testutil.CreateUser(t, "x").ID, channel.ID, ImageBanner, pngHeader)
	assert.ErrorIs(t, err, errno.NotAuthorizedErr)
	_, err = svc.UpdateChannelImage(owner.ID, channel.ID, ImageBanner, []byte("plain text"))
	assert.ErrorIs(t, err, errno.InvalidInputErr)
	_, err = svc.UpdateChannelImage(owner.ID, channel.ID, "cover", pngHeader)
	assert.ErrorIs(t, err, errno.InvalidInputErr)
	_, err = svc.UpdateChannelImage(owner.ID, "missing", ImageBanner, pngHeader)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestChannelPage(t *testing.T) {
	conn := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, "owner")
	fan := testutil.CreateUser(t, "fan")
	channel := testutil.CreateChannel(t, owner)
	testutil.CreateVideo(t, channel, testutil.WithViews(10))
	testutil.CreateVideo(t, channel, testutil.WithViews(5))
	testutil.CreateVideo(t, channel, testutil.WithViews(1000), testutil.Private())
	require.NoError(t, conn.Model(&model.Channel{}).Where("id = ?", channel.ID).Update("fake_subscribers", 9999).Error)
	require.NoError(t, relationdb.CreateSubscription(ctx, &model.Subscription{UserID: fan.ID, ChannelID: channel.ID}))

	page, err := NewChannelPageService(ctx).ChannelPage(fan.ID, channel.ID)
	require.NoError(t, err)
	assert.Len(t, page.Videos, 2)
	assert.Equal(t, int64(2), page.VideoCount)
	assert.Equal(t, int64(15), page.TotalViews)
	assert.Equal(t, int64(1), page.SubscriberCount)
	assert.Equal(t, int64(10000), page.TotalSubscribers)
	assert.Equal(t, "10.0K", page.SubscribersText)
	assert.Equal(t, badge.TierSilver, page.Badge)
	assert.True(t, page.Subscribed)
	assert.False(t, page.IsOwner)

	_, err = NewChannelPageService(ctx).ChannelPage("", "missing")
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestStudio(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, "owner")
	fan := testutil.CreateUser(t, "fan")
	svc := NewStudioService(ctx)

	dash, err := svc.Studio(owner.ID)
	require.NoError(t, err)
	assert.False(t, dash.HasChannel)

	channel := testutil.CreateChannel(t, owner)
	public := testutil.CreateVideo(t, channel, testutil.WithViews(7))
	hidden := testutil.CreateVideo(t, channel, testutil.WithViews(3), testutil.Private())
	require.NoError(t, db.DB.Transaction(func(tx *gorm.DB) error {
		if err := db.CreateLikeWithTx(tx, &model.Like{UserID: fan.ID, VideoID: public.ID, IsLike: true}); err != nil {
			return err
		}
		if err := db.CreateLikeWithTx(tx, &model.Like{UserID: owner.ID, VideoID: hidden.ID, IsLike: true}); err != nil {
			return err
		}
		return db.CreateLikeWithTx(tx, &model.Like{UserID: fan.ID, VideoID: hidden.ID, IsLike: false})
	}))

	dash, err = svc.Studio(owner.ID)
	require.NoError(t, err)
	assert.True(t, dash.HasChannel)
	assert.Equal(t, int64(2), dash.VideoCount)
	assert.Equal(t, int64(10), dash.TotalViews)
	assert.Equal(t, int64(2), dash.TotalLikes)
	assert.Len(t, dash.Videos, 2)
}
