package main

import (
	"context"
	"time"

	"github.com/somonplay/payment-service/internal/config"
	"github.com/somonplay/payment-service/internal/database"
	"github.com/somonplay/payment-service/internal/publishers"
	"github.com/somonplay/payment-service/internal/repository"
	"github.com/somonplay/payment-service/internal/service"
	"github.com/somonplay/payment-service/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			database.NewConnection,
			NewMQConnection,
			NewMQPublisher,

			repository.NewRewardTaskRepository,

			service.NewRewardOutboxService,

			NewRewardPublisher,
		),
		fx.Invoke(runRewardPublisher),
	).Run()
}

func runRewardPublisher(cfg *config.Config, publisher publishers.RewardPublisher, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.RewardQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			logger.Info("queue declared", zap.String("queue", publishers.RewardQueue))

			interval := cfg.Outbox.Interval
			if interval <= 0 {
				interval = 30 * time.Second
			}

			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						if err := publisher.Publish(appCtx); err != nil {
							logger.Error("failed to publish reward tasks", zap.Error(err))
						}
					case <-appCtx.Done():
						logger.Info("publisher context cancelled")
						return
					}
				}
			}()

			logger.Info("reward publisher started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping reward publisher")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewRewardPublisher(outbox service.RewardOutboxService, publisher mq.Publisher,
	cfg *config.Config, logger *zap.Logger) publishers.RewardPublisher {
	return publishers.NewRewardPublisher(outbox, publisher, cfg.Outbox.BatchSize, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}
