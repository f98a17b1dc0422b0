package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	channeldb "StikTube.com/cmd/channel/dal/db"
	interactiondb "StikTube.com/cmd/interaction/dal/db"
	"StikTube.com/cmd/model"
	relationdb "StikTube.com/cmd/relation/dal/db"
	userdb "StikTube.com/cmd/user/dal/db"
	videodb "StikTube.com/cmd/video/dal/db"
	"StikTube.com/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB 在临时目录创建 sqlite 数据库, 建表并注入到所有 dal 包
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "stiktube_test.db") + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	conn, err := database.OpenSqlite(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(conn))

	userdb.Init(conn)
	channeldb.Init(conn)
	videodb.Init(conn)
	interactiondb.Init(conn)
	relationdb.Init(conn)

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}

var seq int64

func next() int64 {
	return atomic.AddInt64(&seq, 1)
}

func CreateUser(t testing.TB, name string) *model.User {
	t.Helper()
	n := next()
	user := &model.User{
		Email: fmt.Sprintf("%s%d@stiktube.test", name, n),
		Name:  name,
	}
	require.NoError(t, userdb.CreateUser(context.Background(), user))
	return user
}

func CreateChannel(t testing.TB, owner *model.User) *model.Channel {
	t.Helper()
	channel := &model.Channel{
		UserID: owner.ID,
		Name:   owner.Name + " channel",
		Handle: fmt.Sprintf("ch%d", next()),
	}
	require.NoError(t, channeldb.CreateChannel(context.Background(), channel))
	return channel
}

// VideoOption 修改种子视频的字段
type VideoOption func(v *model.Video)

func Private() VideoOption {
	return func(v *model.Video) { v.IsPublic = false }
}

func Short() VideoOption {
	return func(v *model.Video) { v.IsShort = true }
}

func WithTitle(title string) VideoOption {
	return func(v *model.Video) { v.Title = title }
}

func WithViews(views int64) VideoOption {
	return func(v *model.Video) { v.Views = views }
}

func WithTags(tags string) VideoOption {
	return func(v *model.Video) { v.Tags = tags }
}

// CreatedAgo 让列表的排序可预测
func CreatedAgo(d time.Duration) VideoOption {
	return func(v *model.Video) { v.CreatedAt = time.Now().Add(-d) }
}

func CreateVideo(t testing.TB, channel *model.Channel, opts ...VideoOption) *model.Video {
	t.Helper()
	video := &model.Video{
		ChannelID: channel.ID,
		YoutubeID: "dQw4w9WgXcQ",
		Title:     fmt.Sprintf("video %d", next()),
		Duration:  213,
		IsPublic:  true,
	}
	for _, opt := range opts {
		opt(video)
	}
	require.NoError(t, videodb.CreateVideo(context.Background(), video))
	return video
}
