package lock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingLocker struct{ calls int }

func (f *failingLocker) Lock(ctx context.Context, key string) (func(), error) {
	f.calls++
	return nil, errors.New("redis unavailable")
}

type countingLocker struct{ locked, unlocked int }

func (c *countingLocker) Lock(ctx context.Context, key string) (func(), error) {
	c.locked++
	return func() { c.unlocked++ }, nil
}

func TestAcquire(t *testing.T) {
	t.Cleanup(func() { SetLocker(nil) })

	t.Run("failure falls back to no lock", func(t *testing.T) {
		f := &failingLocker{}
		SetLocker(f)
		unlock := Acquire(context.Background(), Key("like", "u", "v"))
		assert.NotNil(t, unlock)
		unlock()
		assert.Equal(t, 1, f.calls)
	})

	t.Run("unlock is returned from the locker", func(t *testing.T) {
		c := &countingLocker{}
		SetLocker(c)
		Acquire(context.Background(), "k")()
		assert.Equal(t, 1, c.locked)
		assert.Equal(t, 1, c.unlocked)
	})

	t.Run("nil restores noop", func(t *testing.T) {
		SetLocker(nil)
		_, ok := locker.(NoopLocker)
		assert.True(t, ok)
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "lock:sub:u1:c1", Key("sub", "u1", "c1"))
}
