package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"StikTube.com/cmd/consumer/audit"
	"StikTube.com/config"
	"StikTube.com/pkg/mq"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// 事件审计消费者 把 stiktube_events 上的事件逐条写入日志
func main() {
	config.Init()
	hlog.SetLevel(hlog.LevelInfo)

	url := utils.GetRabbitmqURL()
	if url == "" {
		hlog.Fatal("rabbitmq.addr is not configured")
	}
	consumer, err := mq.NewConsumer(url)
	if err != nil {
		hlog.Fatalf("Failed to create event consumer: %v", err)
	}
	defer consumer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := audit.NewLogger()
	hlog.Info("Event consumer started")
	if err = consumer.ConsumeEvents(ctx, logger); err != nil {
		hlog.Errorf("Event consumer stopped: %v", err)
	}
	hlog.Infof("Event consumer exited, handled: %v", logger.Counts())
}
