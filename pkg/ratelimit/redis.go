package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyRateLimit: ratelimit:{client} -> hit count, expires with the window
const keyRateLimit = "ratelimit:%s"

// RedisLimiter shares fixed-window counters between API replicas.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, limit int, windowSize time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, limit: limit, window: windowSize}
}

// Allow counts the hit and reads the window's remaining TTL in one MULTI
// round trip. EXPIRE NX only arms the TTL on the first hit of a window.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	k := fmt.Sprintf(keyRateLimit, key)

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, r.window)
		pttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("count %s: %w", k, err)
	}

	ttl := pttl.Val()
	if ttl < 0 {
		ttl = r.window
	}
	return result(r.limit, int(incr.Val()), time.Now().Add(ttl)), nil
}
