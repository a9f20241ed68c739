package main

import (
	"context"

	"github.com/somonplay/payment-service/internal/config"
	"github.com/somonplay/payment-service/internal/consumers"
	"github.com/somonplay/payment-service/internal/database"
	"github.com/somonplay/payment-service/internal/publishers"
	"github.com/somonplay/payment-service/internal/repository"
	"github.com/somonplay/payment-service/internal/service"
	"github.com/somonplay/payment-service/pkg/httpclient"
	"github.com/somonplay/payment-service/pkg/mq"
	"github.com/somonplay/payment-service/pkg/referralgateway"
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
			NewMQConsumer,

			repository.NewOrderRepository,
			repository.NewUserRepository,
			repository.NewWalletTransactionRepository,
			repository.NewNotificationRepository,
			repository.NewRewardGrantRepository,
			repository.NewRewardTaskRepository,
			repository.NewTransactionManager,

			NewReferralGateway,
			service.NewReferralService,
			NewFirstRechargeService,
			service.NewRewardDispatchService,

			NewRewardConsumer,
		),
		fx.Invoke(runRewardConsumer),
	).Run()
}

func runRewardConsumer(cfg *config.Config, consumer consumers.RewardConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.RewardQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", publishers.RewardQueue))

			go func() {
				if err := consumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("reward consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping reward consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewReferralGateway(cfg *config.Config) referralgateway.ReferralGateway {
	client := httpclient.NewHTTPClient(cfg.ReferralGateway.Timeout)
	return referralgateway.NewReferralGateway(cfg.ReferralGateway, client)
}

func NewFirstRechargeService(orders repository.OrderRepository, users repository.UserRepository,
	grants repository.RewardGrantRepository, wallet repository.WalletTransactionRepository,
	notifications repository.NotificationRepository, txManager repository.TxManager,
	cfg *config.Config, logger *zap.Logger,
) service.FirstRechargeService {
	return service.NewFirstRechargeService(orders, users, grants, wallet, notifications, txManager,
		cfg.Rewards.FirstRechargeTiers(), logger)
}

func NewRewardConsumer(dispatch service.RewardDispatchService, consumer mq.Consumer,
	cfg *config.Config, logger *zap.Logger,
) consumers.RewardConsumer {
	return consumers.NewRewardConsumer(dispatch, consumer, cfg.RabbitMQ.Prefetch, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
