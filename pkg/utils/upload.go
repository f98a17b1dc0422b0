package utils

import (
	"io"

	"StikTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// ReadFormFile 读取 multipart 中的文件 超过 limit 时返回 InvalidInput
func ReadFormFile(c *app.RequestContext, name string, limit int64) ([]byte, error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, errno.InvalidInputErr.WithMessage("missing file field " + name)
	}
	if header.Size > limit {
		return nil, errno.InvalidInputErr.WithMessage("image too large")
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errno.InvalidInputErr.WithMessage("image too large")
	}
	return data, nil
}
