package handlers

import (
	"context"
	"strings"

	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

type YoutubePreview struct {
	YoutubeID  string            `json:"youtube_id"`
	EmbedURL   string            `json:"embed_url"`
	Thumbnails map[string]string `json:"thumbnails"`
}

// YoutubeIdPreview 发布前预览链接解析的结果
func YoutubeIdPreview(ctx context.Context, c *app.RequestContext) {
	var param YoutubeIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.InvalidInputErr.WithMessage(err.Error()), nil)
		return
	}
	id, ok := utils.ExtractYoutubeID(strings.TrimSpace(param.Input))
	if !ok {
		SendResponse(c, errno.InvalidInputErr.WithMessage("not a YouTube link or video id"), nil)
		return
	}
	preview := &YoutubePreview{
		YoutubeID:  id,
		EmbedURL:   utils.YoutubeEmbedURL(id),
		Thumbnails: make(map[string]string),
	}
	for _, q := range []string{"default", "mq", "hq", "sd", "maxres"} {
		preview.Thumbnails[q] = utils.YoutubeThumbnail(id, q)
	}
	SendResponse(c, errno.Success, preview)
}
