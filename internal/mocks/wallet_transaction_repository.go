package mocks

import (
	"context"

	"github.com/somonplay/payment-service/internal/model"
	"github.com/stretchr/testify/mock"
)

type WalletTransactionRepository struct {
	mock.Mock
}

func (m *WalletTransactionRepository) Create(ctx context.Context, tx *model.WalletTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *WalletTransactionRepository) ExistsForOrder(orderID string) (bool, error) {
	args := m.Called(orderID)
	return args.Bool(0), args.Error(1)
}
