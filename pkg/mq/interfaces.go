package mq

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// EventPublisher 消息生产者接口
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event interface{}) error
}

// 确保Producer实现EventPublisher接口
var _ EventPublisher = (*Producer)(nil)

var publisher EventPublisher

// SetPublisher 启动时注入, 传 nil 关闭事件发布
func SetPublisher(p EventPublisher) {
	publisher = p
}

// Emit 尽力发布事件 失败只记录日志 不影响业务结果
func Emit(ctx context.Context, routingKey string, event interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, routingKey, event); err != nil {
		hlog.CtxWarnf(ctx, "publish %s event failed: %v", routingKey, err)
	}
}
