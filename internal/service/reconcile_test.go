package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/somonplay/payment-service/internal/mocks"
	"github.com/somonplay/payment-service/internal/model"
	"github.com/somonplay/payment-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestReconcile_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("Recovers every stranded order", func(t *testing.T) {
		mockOrders := &mocks.OrderRepository{}
		mockConfirm := &mocks.ConfirmService{}
		svc := service.NewReconcileService(mockOrders, mockConfirm, zap.NewNop())

		stranded := []model.Order{{ID: "order-1"}, {ID: "order-2"}}

		mockOrders.On("FindPaidWithoutLedger", 100).Return(stranded, nil)
		mockConfirm.On("RecoverOrder", ctx, service.RecoverOrderCommand{OrderID: "order-1"}).Return(nil)
		mockConfirm.On("RecoverOrder", ctx, service.RecoverOrderCommand{OrderID: "order-2"}).Return(nil)

		err := svc.Sweep(ctx, 100)

		assert.NoError(t, err)
		mockConfirm.AssertNumberOfCalls(t, "RecoverOrder", 2)
	})

	t.Run("One failed recovery does not stall the sweep", func(t *testing.T) {
		mockOrders := &mocks.OrderRepository{}
		mockConfirm := &mocks.ConfirmService{}
		svc := service.NewReconcileService(mockOrders, mockConfirm, zap.NewNop())

		stranded := []model.Order{{ID: "order-1"}, {ID: "order-2"}}

		mockOrders.On("FindPaidWithoutLedger", 100).Return(stranded, nil)
		mockConfirm.On("RecoverOrder", ctx, service.RecoverOrderCommand{OrderID: "order-1"}).
			Return(errors.New("deadlock"))
		mockConfirm.On("RecoverOrder", ctx, service.RecoverOrderCommand{OrderID: "order-2"}).Return(nil)

		err := svc.Sweep(ctx, 100)

		assert.NoError(t, err)
		mockConfirm.AssertNumberOfCalls(t, "RecoverOrder", 2)
	})

	t.Run("Empty backlog is a no-op", func(t *testing.T) {
		mockOrders := &mocks.OrderRepository{}
		mockConfirm := &mocks.ConfirmService{}
		svc := service.NewReconcileService(mockOrders, mockConfirm, zap.NewNop())

		mockOrders.On("FindPaidWithoutLedger", 100).Return([]model.Order{}, nil)

		err := svc.Sweep(ctx, 100)

		assert.NoError(t, err)
		mockConfirm.AssertNotCalled(t, "RecoverOrder", mock.Anything, mock.Anything)
	})

	t.Run("Listing failure propagates", func(t *testing.T) {
		mockOrders := &mocks.OrderRepository{}
		mockConfirm := &mocks.ConfirmService{}
		svc := service.NewReconcileService(mockOrders, mockConfirm, zap.NewNop())

		mockOrders.On("FindPaidWithoutLedger", 100).Return(nil, errors.New("connection reset"))

		err := svc.Sweep(ctx, 100)

		assert.Error(t, err)
	})
}
