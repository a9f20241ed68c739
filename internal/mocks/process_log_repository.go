package mocks

import (
	"context"

	"github.com/somonplay/payment-service/internal/model"
	"github.com/stretchr/testify/mock"
)

type ProcessLogRepository struct {
	mock.Mock
}

func (m *ProcessLogRepository) Create(ctx context.Context, entry *model.ProcessLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ProcessLogRepository) GetByKey(entityID, operation, dedupKey string) (*model.ProcessLog, error) {
	args := m.Called(entityID, operation, dedupKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProcessLog), args.Error(1)
}

func (m *ProcessLogRepository) HasCompleted(entityID, operation string) (bool, error) {
	args := m.Called(entityID, operation)
	return args.Bool(0), args.Error(1)
}

func (m *ProcessLogRepository) Finalize(ctx context.Context, id int64, status string, lastError *string) error {
	args := m.Called(ctx, id, status, lastError)
	return args.Error(0)
}

func (m *ProcessLogRepository) LatestDedupKey(entityID, operation string) (string, error) {
	args := m.Called(entityID, operation)
	return args.String(0), args.Error(1)
}
