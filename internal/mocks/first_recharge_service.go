package mocks

import (
	"context"

	"github.com/somonplay/payment-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type FirstRechargeService struct {
	mock.Mock
}

func (m *FirstRechargeService) Grant(ctx context.Context, cmd service.GrantFirstRechargeCommand) (service.GrantResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.GrantResult), args.Error(1)
}
