package mocks

import (
	"context"

	"github.com/somonplay/payment-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type ReferralService struct {
	mock.Mock
}

func (m *ReferralService) TriggerFirstPurchase(ctx context.Context, cmd service.TriggerReferralCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
