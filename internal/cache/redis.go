package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/utils"
)

// NewRedisClient connects to redis when REDIS_ADDR is set. Returns (nil, nil)
// when unset: the cache is optional and callers must tolerate a nil client.
func NewRedisClient(log *logger.Logger) (*goredis.Client, error) {
	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info("Redis cache connected", "addr", addr)
	return rdb, nil
}
