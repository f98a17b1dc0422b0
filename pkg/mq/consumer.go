package mq

import (
	"context"
	"fmt"

	"StikTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// EventHandler body 为 json 编码的事件
type EventHandler interface {
	HandleEvent(ctx context.Context, routingKey string, body []byte) error
}

type EventHandlerFunc func(ctx context.Context, routingKey string, body []byte) error

func (f EventHandlerFunc) HandleEvent(ctx context.Context, routingKey string, body []byte) error {
	return f(ctx, routingKey, body)
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// 设置QoS，限制未确认消息数量
	if err = ch.Qos(10, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	if err = setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return &Consumer{
		conn:    conn,
		channel: ch,
	}, nil
}

// ConsumeEvents 阻塞直到 ctx 取消或连接关闭
func (c *Consumer) ConsumeEvents(ctx context.Context, handler EventHandler) error {
	msgs, err := c.channel.Consume(
		constants.EventQueue,
		"",    // consumer
		false, // auto-ack (设置为false，手动确认)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			hlog.Info("Event consumer context cancelled")
			return nil
		case d, ok := <-msgs:
			if !ok {
				hlog.Info("Event consumer channel closed")
				return nil
			}
			if err := handler.HandleEvent(ctx, d.RoutingKey, d.Body); err != nil {
				hlog.Errorf("Failed to handle %s event: %v", d.RoutingKey, err)
				d.Nack(false, false) // 拒绝消息，不重新入队
				continue
			}
			d.Ack(false)
		}
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
