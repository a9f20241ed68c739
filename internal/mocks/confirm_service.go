package mocks

import (
	"context"

	"github.com/somonplay/payment-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type ConfirmService struct {
	mock.Mock
}

func (m *ConfirmService) ConfirmPayment(ctx context.Context, cmd service.ConfirmPaymentCommand) (service.ConfirmPaymentResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.ConfirmPaymentResult), args.Error(1)
}

func (m *ConfirmService) RecoverOrder(ctx context.Context, cmd service.RecoverOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
