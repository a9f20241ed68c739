package mocks

import (
	"context"

	"github.com/somonplay/payment-service/internal/model"
	"github.com/stretchr/testify/mock"
)

type RewardGrantRepository struct {
	mock.Mock
}

func (m *RewardGrantRepository) Create(ctx context.Context, grant *model.RewardGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}
