package service

import (
	"context"

	channeldb "StikTube.com/cmd/channel/dal/db"
	interactiondb "StikTube.com/cmd/interaction/dal/db"
	relationdb "StikTube.com/cmd/relation/dal/db"
	"StikTube.com/cmd/video/dal/db"
	"StikTube.com/cmd/video/service/convert"
	"StikTube.com/pkg/badge"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type WatchService struct {
	ctx context.Context
}

func NewWatchService(ctx context.Context) *WatchService {
	return &WatchService{ctx: ctx}
}

type WatchPage struct {
	Video            *convert.VideoDetail `json:"video"`
	TotalSubscribers int64                `json:"total_subscribers"`
	SubscribersText  string               `json:"subscribers_text"`
	Badge            badge.Tier           `json:"badge"`
	LikeCount        int64                `json:"like_count"`
	DislikeCount     int64                `json:"dislike_count"`
	CommentCount     int64                `json:"comment_count"`
	// 未登录或没有表态时为 nil
	UserLike   *bool                `json:"user_like"`
	Subscribed bool                 `json:"subscribed"`
	IsOwner    bool                 `json:"is_owner"`
	Related    []*convert.VideoCard `json:"related"`
}

// Watch 每次打开都会增加播放量, 增加失败只记录日志
func (s *WatchService) Watch(viewerId, videoId string) (*WatchPage, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, errno.FromDB(err, "video")
	}
	channel, err := channeldb.GetChannel(s.ctx, video.ChannelID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetChannel failed")
	}

	if err = db.IncrVideoViews(s.ctx, videoId); err != nil {
		hlog.CtxWarnf(s.ctx, "increment views of %s failed: %v", videoId, err)
	} else {
		video.Views++
	}

	subscribers, err := relationdb.CountSubscribers(s.ctx, channel.ID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribers failed")
	}
	likes, dislikes, err := interactiondb.CountReactions(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountReactions failed")
	}
	comments, err := interactiondb.GetVideoCommentCount(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoCommentCount failed")
	}
	related, err := db.ListRelatedVideos(s.ctx, videoId, constants.RelatedLimit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListRelatedVideos failed")
	}
	relatedCards, err := convert.Cards(s.ctx, related)
	if err != nil {
		return nil, err
	}

	total := badge.Total(subscribers, channel.FakeSubscribers)
	page := &WatchPage{
		Video:            convert.Detail(video, channel),
		TotalSubscribers: total,
		SubscribersText:  utils.FormatCount(total),
		Badge:            badge.Classify(total),
		LikeCount:        likes,
		DislikeCount:     dislikes,
		CommentCount:     comments,
		IsOwner:          viewerId != "" && viewerId == channel.UserID,
		Related:          relatedCards,
	}
	if viewerId != "" {
		if page.UserLike, err = interactiondb.GetUserReaction(s.ctx, viewerId, videoId); err != nil {
			return nil, errors.WithMessage(err, "dao.GetUserReaction failed")
		}
		if page.Subscribed, err = relationdb.IsSubscribed(s.ctx, viewerId, channel.ID); err != nil {
			return nil, errors.WithMessage(err, "dao.IsSubscribed failed")
		}
	}
	return page, nil
}
