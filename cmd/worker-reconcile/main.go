package main

import (
	"context"
	"time"

	"github.com/somonplay/payment-service/internal/config"
	"github.com/somonplay/payment-service/internal/database"
	"github.com/somonplay/payment-service/internal/repository"
	"github.com/somonplay/payment-service/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,

			repository.NewOrderRepository,
			repository.NewUserRepository,
			repository.NewWalletTransactionRepository,
			repository.NewNotificationRepository,
			repository.NewRewardTaskRepository,
			repository.NewProcessLogRepository,
			repository.NewTransactionManager,

			service.NewConfirmService,
			service.NewReconcileService,
		),
		fx.Invoke(runReconciler),
	).Run()
}

func runReconciler(cfg *config.Config, reconciler service.ReconcileService, logger *zap.Logger,
	lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			interval := cfg.Reconcile.Interval
			if interval <= 0 {
				interval = 5 * time.Minute
			}

			batchSize := cfg.Reconcile.BatchSize
			if batchSize <= 0 {
				batchSize = 100
			}

			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						if err := reconciler.Sweep(appCtx, batchSize); err != nil {
							logger.Error("reconcile sweep failed", zap.Error(err))
						}
					case <-appCtx.Done():
						logger.Info("reconciler context cancelled")
						return
					}
				}
			}()

			logger.Info("reconciler started", zap.Duration("interval", interval))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping reconciler")
			cancel()
			return nil
		},
	})
}
