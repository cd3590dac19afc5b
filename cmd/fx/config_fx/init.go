package config_fx

import (
	"time"

	"gidimart/internal/config"
	"gidimart/pkg/utils"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideTokenManager,
)

func provideLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func provideTokenManager(cfg config.Config, logger *zap.Logger) *utils.TokenManager {
	if cfg.InsecureJWTSecret() {
		logger.Warn("JWT_SECRET is not set; tokens are signed with the default secret")
	}
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}
