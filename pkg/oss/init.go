package oss

import (
	"context"
	"strings"

	"StikTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// InitMinio endpoint 未配置时不启用图片上传
func InitMinio(ctx context.Context) error {
	conf := config.ConfigInfo.Minio
	if conf.Endpoint == "" {
		hlog.Info("minio not configured, channel image upload is disabled")
		return nil
	}
	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", conf.Endpoint, conf.AccessKey)

	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	publicURL := conf.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if conf.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + conf.Endpoint
	}
	store := &MinioStore{
		client:    client,
		bucket:    conf.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
	if err = store.ensureBucket(ctx); err != nil {
		return err
	}
	Store = store
	hlog.Info("Connect Minio Success")
	return nil
}
