package mocks

import (
	"context"

	"github.com/somonplay/payment-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type RewardOutboxService struct {
	mock.Mock
}

func (m *RewardOutboxService) FindTasksToQueue(ctx context.Context, limit int) ([]service.DispatchRewardCommand, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DispatchRewardCommand), args.Error(1)
}

func (m *RewardOutboxService) MarkTaskAsQueued(ctx context.Context, taskID int64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}
