package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"StikTube.com/cmd/interaction/dal/db"
	"StikTube.com/cmd/model"
	userdb "StikTube.com/cmd/user/dal/db"
	videodb "StikTube.com/cmd/video/dal/db"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/mq"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CommentItem 评论和作者信息 一级评论带 Replies
type CommentItem struct {
	ID           string             `json:"id"`
	VideoID      string             `json:"video_id"`
	ParentID     *string            `json:"parent_id"`
	Text         string             `json:"text"`
	CreatedAt    time.Time          `json:"created_at"`
	CreatedText  string             `json:"created_text"`
	User         *model.UserSummary `json:"user"`
	Replies      []*CommentItem     `json:"replies,omitempty"`
	RepliesCount int                `json:"replies_count"`
}

func validateCommentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errno.InvalidInputErr.WithMessage("comment text is required")
	}
	if utf8.RuneCountInString(text) > constants.MaxCommentLength {
		return "", errno.InvalidInputErr.WithMessage("comment is too long")
	}
	return text, nil
}

// CreateComment parentId 为空表示一级评论, 回复的回复挂到一级评论下
func (service *CommentService) CreateComment(userId, videoId, text, parentId string) (*CommentItem, error) {
	text, err := validateCommentText(text)
	if err != nil {
		return nil, err
	}
	exist, err := videodb.CheckVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckVideoExist failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	comment := &model.Comment{UserID: userId, VideoID: videoId, Text: text}
	if parentId != "" {
		parent, err := db.GetComment(service.ctx, parentId)
		if err != nil {
			return nil, errno.FromDB(err, "parent comment")
		}
		if parent.VideoID != videoId {
			return nil, errno.InvalidInputErr.WithMessage("parent comment belongs to another video")
		}
		if parent.ParentID != nil {
			parentId = *parent.ParentID
		}
		comment.ParentID = &parentId
	}
	if err = db.CreateComment(service.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}

	mq.Emit(service.ctx, mq.RoutingComment, &mq.CommentEvent{
		Meta:      mq.NewMeta("created"),
		CommentID: comment.ID,
		VideoID:   videoId,
		UserID:    userId,
		ParentID:  parentId,
	})

	user, err := userdb.GetUser(service.ctx, userId)
	if err != nil {
		return nil, errno.FromDB(err, "user")
	}
	summary := user.Summary()
	return toItem(comment, &summary), nil
}

// ListComments 一级评论最新在前, 回复按时间正序
func (service *CommentService) ListComments(videoId string) ([]*CommentItem, error) {
	tops, err := db.ListTopComments(service.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListTopComments failed")
	}
	parentIds := make([]string, 0, len(tops))
	for _, c := range tops {
		parentIds = append(parentIds, c.ID)
	}
	replies, err := db.ListReplies(service.ctx, parentIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListReplies failed")
	}

	userIds := make([]string, 0, len(tops)+len(replies))
	for _, c := range tops {
		userIds = append(userIds, c.UserID)
	}
	for _, c := range replies {
		userIds = append(userIds, c.UserID)
	}
	users, err := userdb.MGetUsers(service.ctx, utils.UniqueStrings(userIds))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.MGetUsers failed")
	}
	author := func(id string) *model.UserSummary {
		if u, ok := users[id]; ok {
			s := u.Summary()
			return &s
		}
		return nil
	}

	items := make([]*CommentItem, 0, len(tops))
	byId := make(map[string]*CommentItem, len(tops))
	for _, c := range tops {
		item := toItem(c, author(c.UserID))
		item.Replies = make([]*CommentItem, 0)
		byId[c.ID] = item
		items = append(items, item)
	}
	for _, r := range replies {
		if parent, ok := byId[*r.ParentID]; ok {
			parent.Replies = append(parent.Replies, toItem(r, author(r.UserID)))
			parent.RepliesCount++
		}
	}
	return items, nil
}

// DeleteComment 作者或管理员可以删除, 一级评论的回复一起删除
func (service *CommentService) DeleteComment(userId, commentId string, isAdmin bool) error {
	comment, err := db.GetComment(service.ctx, commentId)
	if err != nil {
		return errno.FromDB(err, "comment")
	}
	if comment.UserID != userId && !isAdmin {
		return errno.NotAuthorizedErr.WithMessage("only the author can delete this comment")
	}
	if err = db.DeleteCommentWithReplies(service.ctx, commentId); err != nil {
		return errors.WithMessage(err, "dao.DeleteCommentWithReplies failed")
	}

	hlog.CtxInfof(service.ctx, "comment %s deleted by %s", commentId, userId)
	event := &mq.CommentEvent{
		Meta:      mq.NewMeta("deleted"),
		CommentID: commentId,
		VideoID:   comment.VideoID,
		UserID:    userId,
	}
	if comment.ParentID != nil {
		event.ParentID = *comment.ParentID
	}
	mq.Emit(service.ctx, mq.RoutingComment, event)
	return nil
}

func toItem(c *model.Comment, user *model.UserSummary) *CommentItem {
	return &CommentItem{
		ID:          c.ID,
		VideoID:     c.VideoID,
		ParentID:    c.ParentID,
		Text:        c.Text,
		CreatedAt:   c.CreatedAt,
		CreatedText: utils.FormatRelativeTime(c.CreatedAt),
		User:        user,
	}
}
