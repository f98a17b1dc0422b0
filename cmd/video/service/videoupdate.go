package service

import (
	"context"
	"strings"

	channeldb "StikTube.com/cmd/channel/dal/db"
	interactiondb "StikTube.com/cmd/interaction/dal/db"
	"StikTube.com/cmd/model"
	"StikTube.com/cmd/video/dal/db"
	"StikTube.com/cmd/video/service/convert"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoUpdateService struct {
	ctx context.Context
}

func NewVideoUpdateService(ctx context.Context) *VideoUpdateService {
	return &VideoUpdateService{ctx: ctx}
}

// UpdateRequest nil 字段保持不变
type UpdateRequest struct {
	Title       *string
	Description *string
	Tags        *[]string
	Thumbnail   *string
	IsPublic    *bool
	IsShort     *bool
}

// loadOwned 返回视频和它所属的频道, 调用者必须是频道所有者 (或 allowAdmin 时的管理员)
func (s *VideoUpdateService) loadOwned(userId, videoId string, isAdmin bool) (*model.Video, *model.Channel, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, nil, errno.FromDB(err, "video")
	}
	channel, err := channeldb.GetChannel(s.ctx, video.ChannelID)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "dao.GetChannel failed")
	}
	if channel.UserID != userId && !isAdmin {
		return nil, nil, errno.NotAuthorizedErr.WithMessage("only the channel owner can change this video")
	}
	return video, channel, nil
}

func (s *VideoUpdateService) UpdateVideo(userId, videoId string, req *UpdateRequest) (*model.Video, error) {
	video, channel, err := s.loadOwned(userId, videoId, false)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		title, err := validTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		fields["title"] = title
	}
	if req.Description != nil {
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Tags != nil {
		fields["tags"] = convert.JoinTags(*req.Tags)
	}
	if req.Thumbnail != nil {
		fields["thumbnail"] = strings.TrimSpace(*req.Thumbnail)
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}
	if req.IsShort != nil {
		fields["is_short"] = *req.IsShort
	}
	if len(fields) == 0 {
		return video, nil
	}
	if err = db.UpdateVideo(s.ctx, videoId, fields); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateVideo failed")
	}

	mq.Emit(s.ctx, mq.RoutingVideo, &mq.VideoEvent{
		Meta:      mq.NewMeta("updated"),
		VideoID:   videoId,
		ChannelID: channel.ID,
		UserID:    userId,
	})
	video, err = db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, errno.FromDB(err, "video")
	}
	return video, nil
}

// DeleteVideo 所有者或管理员可以删除 点赞和评论一起删除
func (s *VideoUpdateService) DeleteVideo(userId, videoId string, isAdmin bool) error {
	video, channel, err := s.loadOwned(userId, videoId, isAdmin)
	if err != nil {
		return err
	}
	err = db.DB.WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		if err := interactiondb.DeleteLikesByVideoWithTx(tx, videoId); err != nil {
			return err
		}
		if err := interactiondb.DeleteCommentsByVideoWithTx(tx, videoId); err != nil {
			return err
		}
		return db.DeleteVideoWithTx(tx, videoId)
	})
	if err != nil {
		return errors.WithMessage(err, "delete video failed")
	}

	hlog.CtxInfof(s.ctx, "video %s deleted by %s", videoId, userId)
	mq.Emit(s.ctx, mq.RoutingVideo, &mq.VideoEvent{
		Meta:      mq.NewMeta("deleted"),
		VideoID:   videoId,
		ChannelID: channel.ID,
		UserID:    userId,
		YoutubeID: video.YoutubeID,
	})
	return nil
}
