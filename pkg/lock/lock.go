package lock

import (
	"context"
	"fmt"
	"time"

	"StikTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const Expiry = 5 * time.Second

// Locker 单写者锁 只是附加保护, 唯一索引才是最终保证
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type NoopLocker struct{}

func (NoopLocker) Lock(ctx context.Context, key string) (func(), error) {
	return func() {}, nil
}

type RedsyncLocker struct {
	rs *redsync.Redsync
}

func NewRedsyncLocker(client *redis.Client) *RedsyncLocker {
	return &RedsyncLocker{rs: redsync.New(goredis.NewPool(client))}
}

func (l *RedsyncLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex(key,
		redsync.WithExpiry(Expiry),
		redsync.WithTries(20),
		redsync.WithRetryDelay(50*time.Millisecond),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		if _, err := mutex.UnlockContext(context.Background()); err != nil {
			hlog.Warnf("unlock %s failed: %v", key, err)
		}
	}, nil
}

var locker Locker = NoopLocker{}

// SetLocker 启动时注入, nil 表示不加锁
func SetLocker(l Locker) {
	if l == nil {
		l = NoopLocker{}
	}
	locker = l
}

// Key lock:like:user:video 这样的键
func Key(kind, a, b string) string {
	return fmt.Sprintf(constants.LockKeyTemplate, kind, a, b)
}

// Acquire 拿不到锁时记录日志并继续 返回的函数总是可以调用
func Acquire(ctx context.Context, key string) func() {
	unlock, err := locker.Lock(ctx, key)
	if err != nil {
		hlog.CtxWarnf(ctx, "acquire lock %s failed, continuing without it: %v", key, err)
		return func() {}
	}
	return unlock
}
