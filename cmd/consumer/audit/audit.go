package audit

import (
	"context"
	"encoding/json"
	"sync"

	"StikTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// Logger 把领域事件写成审计日志 并按路由键和类型计数
type Logger struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewLogger() *Logger {
	return &Logger{counts: make(map[string]int64)}
}

var _ mq.EventHandler = (*Logger)(nil)

// HandleEvent 无法解析的消息返回错误, 由消费者拒绝
func (l *Logger) HandleEvent(ctx context.Context, routingKey string, body []byte) error {
	var meta mq.Meta
	if err := json.Unmarshal(body, &meta); err != nil {
		return errors.Wrapf(err, "decode %s event failed", routingKey)
	}
	if meta.EventID == "" || meta.Type == "" {
		return errors.Errorf("%s event without id or type", routingKey)
	}
	detail, err := decode(routingKey, body)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.counts[routingKey+"."+meta.Type]++
	l.mu.Unlock()

	hlog.CtxInfof(ctx, "[audit] %s.%s id=%s at=%d %s", routingKey, meta.Type, meta.EventID, meta.Timestamp, detail)
	return nil
}

func decode(routingKey string, body []byte) (string, error) {
	var event interface{}
	switch routingKey {
	case mq.RoutingReaction:
		event = &mq.ReactionEvent{}
	case mq.RoutingSubscription:
		event = &mq.SubscriptionEvent{}
	case mq.RoutingVideo:
		event = &mq.VideoEvent{}
	case mq.RoutingComment:
		event = &mq.CommentEvent{}
	case mq.RoutingChannel:
		event = &mq.ChannelEvent{}
	default:
		return "", errors.Errorf("unknown routing key %q", routingKey)
	}
	if err := json.Unmarshal(body, event); err != nil {
		return "", errors.Wrapf(err, "decode %s event failed", routingKey)
	}
	switch e := event.(type) {
	case *mq.ReactionEvent:
		return "user=" + e.UserID + " video=" + e.VideoID + " state=" + e.State, nil
	case *mq.SubscriptionEvent:
		return "user=" + e.UserID + " channel=" + e.ChannelID, nil
	case *mq.VideoEvent:
		return "video=" + e.VideoID + " channel=" + e.ChannelID, nil
	case *mq.CommentEvent:
		return "comment=" + e.CommentID + " video=" + e.VideoID, nil
	case *mq.ChannelEvent:
		return "channel=" + e.ChannelID + " user=" + e.UserID, nil
	}
	return "", nil
}

// Counts 返回计数的副本
func (l *Logger) Counts() map[string]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	res := make(map[string]int64, len(l.counts))
	for k, v := range l.counts {
		res[k] = v
	}
	return res
}
