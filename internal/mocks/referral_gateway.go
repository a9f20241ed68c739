package mocks

import (
	"context"

	"github.com/somonplay/payment-service/pkg/referralgateway"
	"github.com/stretchr/testify/mock"
)

type ReferralGateway struct {
	mock.Mock
}

func (m *ReferralGateway) TriggerReward(ctx context.Context, request referralgateway.TriggerRewardRequest) (referralgateway.Response, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(referralgateway.Response), args.Error(1)
}
