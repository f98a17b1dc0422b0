package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"StikTube.com/cmd/channel/dal/db"
	"StikTube.com/cmd/model"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

var handlePattern = regexp.MustCompile(`^[a-z0-9_.-]{3,30}$`)

const maxChannelNameLength = 100

type CreateChannelService struct {
	ctx context.Context
}

func NewCreateChannelService(ctx context.Context) *CreateChannelService {
	return &CreateChannelService{ctx: ctx}
}

// NormalizeHandle 去掉 @ 前缀并转为小写
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}

// CreateChannel 每个用户只能有一个频道 handle 全局唯一
func (s *CreateChannelService) CreateChannel(userId, name, handle, description string) (*model.Channel, error) {
	name = strings.TrimSpace(name)
	handle = NormalizeHandle(handle)
	if name == "" || utf8.RuneCountInString(name) > maxChannelNameLength {
		return nil, errno.InvalidInputErr.WithMessage("channel name must be 1-100 characters")
	}
	if !handlePattern.MatchString(handle) {
		return nil, errno.InvalidInputErr.WithMessage("handle must be 3-30 characters of a-z, 0-9, '_', '.', '-'")
	}

	existing, err := db.GetChannelByUser(s.ctx, userId)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "dao.GetChannelByUser failed")
	}
	if existing != nil {
		return nil, errno.ConflictErr.WithMessage("you already have a channel")
	}
	taken, err := db.CheckHandleExist(s.ctx, handle)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "dao.CheckHandleExist failed")
	}
	if taken {
		return nil, errno.ConflictErr.WithMessage("handle is already taken")
	}

	channel := &model.Channel{
		UserID:      userId,
		Name:        name,
		Handle:      handle,
		Description: strings.TrimSpace(description),
	}
	if err = db.CreateChannel(s.ctx, channel); err != nil {
		// 检查之后被并发请求抢先
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.ConflictErr.WithMessage("channel or handle already exists")
		}
		return nil, pkgerrors.WithMessage(err, "dao.CreateChannel failed")
	}

	hlog.CtxInfof(s.ctx, "channel %s (@%s) created by %s", channel.ID, channel.Handle, userId)
	mq.Emit(s.ctx, mq.RoutingChannel, &mq.ChannelEvent{
		Meta:      mq.NewMeta("created"),
		ChannelID: channel.ID,
		UserID:    userId,
		Handle:    channel.Handle,
	})
	return channel, nil
}
