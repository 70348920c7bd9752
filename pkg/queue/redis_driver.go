package queue

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adityakr/bazaari/pkg/cache"
)

// RedisDriver stores jobs in a Redis list so multiple nodes can share one
// queue. Push is LPUSH, Pop is a blocking BRPOP.
type RedisDriver struct {
	key string
}

// NewRedisDriver builds a driver using the shared Redis connection.
func NewRedisDriver(key string) *RedisDriver {
	return &RedisDriver{key: key}
}

func (d *RedisDriver) Push(ctx context.Context, raw []byte) error {
	return cache.RDB.LPush(ctx, d.key, raw).Err()
}

func (d *RedisDriver) Pop(ctx context.Context, timeout time.Duration) ([]byte, error) {
	res, err := cache.RDB.BRPop(ctx, timeout, d.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}
	// BRPOP returns [key, value].
	if len(res) != 2 {
		return nil, ErrEmpty
	}
	return []byte(res[1]), nil
}
