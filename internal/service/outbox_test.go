package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/somonplay/payment-service/internal/mocks"
	"github.com/somonplay/payment-service/internal/model"
	"github.com/somonplay/payment-service/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRewardOutbox_FindTasksToQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("Maps unpublished tasks to dispatch commands", func(t *testing.T) {
		mockTasks := &mocks.RewardTaskRepository{}
		svc := service.NewRewardOutboxService(mockTasks, zap.NewNop())

		tasks := []model.RewardTask{
			{ID: 1, OrderID: "order-1", UserID: "user-1", TransactionID: "TX1",
				Amount: decimal.NewFromInt(100), Coins: 110},
			{ID: 2, OrderID: "order-2", UserID: "user-2", TransactionID: "TX2",
				Amount: decimal.NewFromInt(50), Coins: 50},
		}

		mockTasks.On("FindUnpublished", 100).Return(tasks, nil)

		commands, err := svc.FindTasksToQueue(ctx, 100)

		assert.NoError(t, err)
		assert.Len(t, commands, 2)
		assert.Equal(t, int64(1), commands[0].TaskID)
		assert.Equal(t, "order-1", commands[0].OrderID)
		assert.Equal(t, int64(110), commands[0].Coins)
	})

	t.Run("Empty backlog yields no commands", func(t *testing.T) {
		mockTasks := &mocks.RewardTaskRepository{}
		svc := service.NewRewardOutboxService(mockTasks, zap.NewNop())

		mockTasks.On("FindUnpublished", 100).Return([]model.RewardTask{}, nil)

		commands, err := svc.FindTasksToQueue(ctx, 100)

		assert.NoError(t, err)
		assert.Empty(t, commands)
	})

	t.Run("Query failure propagates", func(t *testing.T) {
		mockTasks := &mocks.RewardTaskRepository{}
		svc := service.NewRewardOutboxService(mockTasks, zap.NewNop())

		mockTasks.On("FindUnpublished", 100).Return(nil, errors.New("connection reset"))

		commands, err := svc.FindTasksToQueue(ctx, 100)

		assert.Error(t, err)
		assert.Nil(t, commands)
	})
}

func TestRewardOutbox_MarkTaskAsQueued(t *testing.T) {
	ctx := context.Background()

	t.Run("Marks task as published", func(t *testing.T) {
		mockTasks := &mocks.RewardTaskRepository{}
		svc := service.NewRewardOutboxService(mockTasks, zap.NewNop())

		mockTasks.On("MarkQueued", ctx, int64(1)).Return(nil)

		err := svc.MarkTaskAsQueued(ctx, 1)

		assert.NoError(t, err)
		mockTasks.AssertExpectations(t)
	})

	t.Run("Update failure propagates", func(t *testing.T) {
		mockTasks := &mocks.RewardTaskRepository{}
		svc := service.NewRewardOutboxService(mockTasks, zap.NewNop())

		mockTasks.On("MarkQueued", ctx, int64(1)).Return(errors.New("connection reset"))

		err := svc.MarkTaskAsQueued(ctx, 1)

		assert.Error(t, err)
	})
}
