package service

import (
	"context"
	"strings"
	"unicode/utf8"

	channeldb "StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	"StikTube.com/cmd/video/dal/db"
	"StikTube.com/cmd/video/service/convert"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/mq"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type PublishService struct {
	ctx context.Context
}

func NewPublishService(ctx context.Context) *PublishService {
	return &PublishService{ctx: ctx}
}

// PublishRequest Input 为 YouTube 链接或11位ID
type PublishRequest struct {
	Input       string
	Title       string
	Description string
	Tags        []string
	IsShort     bool
	Duration    int64
	Thumbnail   string
	IsPublic    *bool
}

func validTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errno.InvalidInputErr.WithMessage("title is required")
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return "", errno.InvalidInputErr.WithMessage("title is too long")
	}
	return title, nil
}

// Publish 视频发布到调用者自己的频道
func (s *PublishService) Publish(userId string, req *PublishRequest) (*model.Video, error) {
	channel, err := channeldb.GetChannelByUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetChannelByUser failed")
	}
	if channel == nil {
		return nil, errno.InvalidInputErr.WithMessage("you need to create a channel first")
	}
	title, err := validTitle(req.Title)
	if err != nil {
		return nil, err
	}
	youtubeId, ok := utils.ExtractYoutubeID(strings.TrimSpace(req.Input))
	if !ok {
		return nil, errno.InvalidInputErr.WithMessage("not a YouTube link or video id")
	}
	if req.Duration < 0 {
		return nil, errno.InvalidInputErr.WithMessage("duration must not be negative")
	}

	video := &model.Video{
		ChannelID:   channel.ID,
		YoutubeID:   youtubeId,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Thumbnail:   strings.TrimSpace(req.Thumbnail),
		Duration:    req.Duration,
		IsPublic:    req.IsPublic == nil || *req.IsPublic,
		IsShort:     req.IsShort,
		Tags:        convert.JoinTags(req.Tags),
	}
	if err = db.CreateVideo(s.ctx, video); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateVideo failed")
	}

	hlog.CtxInfof(s.ctx, "video %s (%s) published on channel %s", video.ID, youtubeId, channel.ID)
	mq.Emit(s.ctx, mq.RoutingVideo, &mq.VideoEvent{
		Meta:      mq.NewMeta("published"),
		VideoID:   video.ID,
		ChannelID: channel.ID,
		UserID:    userId,
		YoutubeID: youtubeId,
		Title:     title,
	})
	return video, nil
}
