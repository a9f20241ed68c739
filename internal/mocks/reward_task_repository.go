package mocks

import (
	"context"

	"github.com/somonplay/payment-service/internal/model"
	"github.com/stretchr/testify/mock"
)

type RewardTaskRepository struct {
	mock.Mock
}

func (m *RewardTaskRepository) Create(ctx context.Context, task *model.RewardTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *RewardTaskRepository) GetByID(id int64) (*model.RewardTask, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RewardTask), args.Error(1)
}

func (m *RewardTaskRepository) FindUnpublished(limit int) ([]model.RewardTask, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RewardTask), args.Error(1)
}

func (m *RewardTaskRepository) MarkQueued(ctx context.Context, taskID int64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *RewardTaskRepository) Finalize(ctx context.Context, taskID int64, state string, lastError *string) error {
	args := m.Called(ctx, taskID, state, lastError)
	return args.Error(0)
}
