package oss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// ImageStore 频道头像与横幅的存储
type ImageStore interface {
	PutImage(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error)
}

// Store 为 nil 表示没有配置对象存储
var Store ImageStore

type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

const location = "us-east-1" // MinIO默认区域

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	// 检查存储桶是否存在，不存在则创建
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// PutImage 同名对象直接覆盖, 返回可公开访问的地址
func (s *MinioStore) PutImage(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "put object %s failed", objectName)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

var imageSuffix = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageSuffix 不支持的类型返回 false
func ImageSuffix(contentType string) (string, bool) {
	suffix, ok := imageSuffix[contentType]
	return suffix, ok
}

// UploadImage 按内容识别图片类型, 对象名为 folder/id.ext
func UploadImage(ctx context.Context, folder, id string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errno.InvalidInputErr.WithMessage("empty image")
	}
	if len(data) > constants.MaxImageSize {
		return "", errno.InvalidInputErr.WithMessage("image too large")
	}
	contentType := http.DetectContentType(data)
	suffix, ok := ImageSuffix(contentType)
	if !ok {
		return "", errno.InvalidInputErr.WithMessage("unsupported image format: " + contentType)
	}
	if Store == nil {
		return "", errno.ServiceErr.WithMessage("image storage is not configured")
	}
	return Store.PutImage(ctx, folder+"/"+id+suffix, contentType, bytes.NewReader(data), int64(len(data)))
}
