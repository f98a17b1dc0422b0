package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"StikTube.com/pkg/cache"
	"StikTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	goredis "github.com/redis/go-redis/v9"
)

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf(constants.RevokedTokenKeyTemplate, hex.EncodeToString(sum[:]))
}

// RevokeToken 把令牌加入黑名单直到它过期, 没有 redis 时返回 false
func RevokeToken(ctx context.Context, token string, expireAt time.Time) (bool, error) {
	if cache.Client == nil || token == "" {
		return false, nil
	}
	ttl := time.Until(expireAt)
	if ttl <= 0 {
		return true, nil
	}
	if err := cache.Client.Set(ctx, revokedKey(token), 1, ttl).Err(); err != nil {
		hlog.CtxErrorf(ctx, "Redis set revoked token failed : %v", err)
		return false, err
	}
	return true, nil
}

// IsTokenRevoked redis 出错时按未吊销处理
func IsTokenRevoked(ctx context.Context, token string) bool {
	if cache.Client == nil || token == "" {
		return false
	}
	n, err := cache.Client.Exists(ctx, revokedKey(token)).Result()
	if err != nil && err != goredis.Nil {
		hlog.CtxWarnf(ctx, "Redis check revoked token failed : %v", err)
		return false
	}
	return n > 0
}
