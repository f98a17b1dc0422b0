package oss

import (
	"context"
	"io"
	"testing"

	"StikTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	objects map[string][]byte
}

func (m *memoryStore) PutImage(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.objects[objectName] = data
	return "http://images.test/" + objectName, nil
}

// 最小的合法 PNG 文件头
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestImageSuffix(t *testing.T) {
	cases := map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	}
	for contentType, want := range cases {
		got, ok := ImageSuffix(contentType)
		assert.True(t, ok, contentType)
		assert.Equal(t, want, got)
	}
	_, ok := ImageSuffix("video/mp4")
	assert.False(t, ok)
}

func TestUploadImage(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{}}
	Store = store
	t.Cleanup(func() { Store = nil })
	ctx := context.Background()

	t.Run("png is stored under folder", func(t *testing.T) {
		url, err := UploadImage(ctx, "avatar", "c1", pngHeader)
		require.NoError(t, err)
		assert.Equal(t, "http://images.test/avatar/c1.png", url)
		assert.Contains(t, store.objects, "avatar/c1.png")
	})

	t.Run("text is rejected", func(t *testing.T) {
		_, err := UploadImage(ctx, "avatar", "c1", []byte("hello world"))
		assert.ErrorIs(t, err, errno.InvalidInputErr)
	})

	t.Run("empty is rejected", func(t *testing.T) {
		_, err := UploadImage(ctx, "banner", "c1", nil)
		assert.ErrorIs(t, err, errno.InvalidInputErr)
	})

	t.Run("missing store", func(t *testing.T) {
		Store = nil
		_, err := UploadImage(ctx, "banner", "c1", pngHeader)
		assert.ErrorIs(t, err, errno.ServiceErr)
	})
}
