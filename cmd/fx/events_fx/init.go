package events_fx

import (
	"context"

	"gidimart/internal/config"
	"gidimart/internal/events"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(providePublisher)

const publisherBuffer = 1024

func providePublisher(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("KAFKA_BROKERS not set, domain events are discarded")
		return events.NoopPublisher{}
	}

	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, publisherBuffer, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			publisher.Start()
			logger.Info("publishing domain events to kafka",
				zap.Strings("brokers", cfg.KafkaBrokers),
				zap.String("topic", cfg.KafkaTopic))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return publisher.Close(ctx)
		},
	})
	return publisher
}
