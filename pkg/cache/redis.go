package cache

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// Client 未配置 redis 时为 nil, 依赖它的功能自动关闭
var Client *redis.Client

// Init 连接 redis, addr 为空时直接返回
func Init(addr, password string, db int) error {
	if addr == "" {
		hlog.Info("redis not configured, token revocation and locks are disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return err
	}
	hlog.Info("Connected to redis : ", pong)
	Client = client
	return nil
}

func Close() error {
	if Client == nil {
		return nil
	}
	return Client.Close()
}
