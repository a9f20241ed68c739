package service

import (
	"context"

	"github.com/somonplay/payment-service/internal/repository"
	"go.uber.org/zap"
)

type ReconcileService interface {
	Sweep(ctx context.Context, limit int) error
}

type reconcile struct {
	orders  repository.OrderRepository
	confirm ConfirmService
	logger  *zap.Logger
}

func NewReconcileService(orders repository.OrderRepository, confirm ConfirmService,
	logger *zap.Logger) ReconcileService {
	return &reconcile{orders: orders, confirm: confirm, logger: logger}
}

// Sweep finds paid orders missing their wallet transaction and re-runs the
// credit step for each. Per-order failures are logged and skipped so one bad
// row cannot stall the sweep.
func (s *reconcile) Sweep(ctx context.Context, limit int) error {
	orders, err := s.orders.FindPaidWithoutLedger(limit)
	if err != nil {
		s.logger.Error("Failed to list orders for reconciliation", zap.Error(err))
		return err
	}

	if len(orders) == 0 {
		return nil
	}

	s.logger.Info("Reconciling stranded paid orders", zap.Int("count", len(orders)))

	recovered := 0
	for _, order := range orders {
		if err := s.confirm.RecoverOrder(ctx, RecoverOrderCommand{OrderID: order.ID}); err != nil {
			s.logger.Error("Failed to recover order",
				zap.Error(err),
				zap.String("orderID", order.ID))
			continue
		}

		recovered++
	}

	s.logger.Info("Reconciliation pass finished",
		zap.Int("recovered", recovered),
		zap.Int("total", len(orders)))

	return nil
}
