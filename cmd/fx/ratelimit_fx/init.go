package ratelimit_fx

import (
	"context"

	"gidimart/internal/config"
	"gidimart/internal/infra"
	"gidimart/pkg/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideLimiter)

// provideLimiter shares counters through Redis when REDIS_ADDR is set and
// falls back to per-process counters otherwise.
func provideLimiter(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (ratelimit.Limiter, error) {
	if cfg.RedisAddr == "" {
		logger.Info("rate limiting with in-process counters")
		return ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow), nil
	}

	rdb, err := infra.NewRedis(context.Background(), cfg.RedisAddr)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})

	logger.Info("rate limiting with redis", zap.String("addr", cfg.RedisAddr))
	return ratelimit.NewRedisLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow), nil
}
