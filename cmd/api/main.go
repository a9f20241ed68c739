package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/somonplay/payment-service/internal/api"
	v1 "github.com/somonplay/payment-service/internal/api/v1"
	"github.com/somonplay/payment-service/internal/config"
	"github.com/somonplay/payment-service/internal/database"
	middleware "github.com/somonplay/payment-service/internal/error"
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
			NewFiberApp,

			repository.NewOrderRepository,
			repository.NewUserRepository,
			repository.NewWalletTransactionRepository,
			repository.NewNotificationRepository,
			repository.NewRewardTaskRepository,
			repository.NewProcessLogRepository,
			repository.NewTransactionManager,

			service.NewOrderService,
			service.NewConfirmService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting API server", zap.String("port", cfg.API.Port))
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("API server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
