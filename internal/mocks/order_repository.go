package mocks

import (
	"context"

	"github.com/somonplay/payment-service/internal/model"
	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) GetByID(id string) (*model.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *OrderRepository) MarkPaid(ctx context.Context, orderID string) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) UpdateNotes(ctx context.Context, orderID string, notes string) error {
	args := m.Called(ctx, orderID, notes)
	return args.Error(0)
}

func (m *OrderRepository) FindPaidWithoutLedger(limit int) ([]model.Order, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *OrderRepository) HasCompletedRecharge(userID string, excludeOrderID string) (bool, error) {
	args := m.Called(userID, excludeOrderID)
	return args.Bool(0), args.Error(1)
}
