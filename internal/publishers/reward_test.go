package publishers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/somonplay/payment-service/internal/mocks"
	"github.com/somonplay/payment-service/internal/publishers"
	"github.com/somonplay/payment-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRewardPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	commands := []service.DispatchRewardCommand{
		{TaskID: 1, OrderID: "order-1", UserID: "user-1"},
		{TaskID: 2, OrderID: "order-2", UserID: "user-2"},
	}

	t.Run("Publishes batch and marks every task queued", func(t *testing.T) {
		mockOutbox := &mocks.RewardOutboxService{}
		mockPublisher := &mocks.Publisher{}
		pub := publishers.NewRewardPublisher(mockOutbox, mockPublisher, 100, zap.NewNop())

		mockOutbox.On("FindTasksToQueue", ctx, 100).Return(commands, nil)
		mockPublisher.On("Publish", ctx, "", publishers.RewardQueue, mock.Anything).Return(nil)
		mockOutbox.On("MarkTaskAsQueued", ctx, int64(1)).Return(nil)
		mockOutbox.On("MarkTaskAsQueued", ctx, int64(2)).Return(nil)

		err := pub.Publish(ctx)

		assert.NoError(t, err)
		mockOutbox.AssertExpectations(t)
		mockPublisher.AssertNumberOfCalls(t, "Publish", 2)
	})

	t.Run("Failed publish leaves the task for the next pass", func(t *testing.T) {
		mockOutbox := &mocks.RewardOutboxService{}
		mockPublisher := &mocks.Publisher{}
		pub := publishers.NewRewardPublisher(mockOutbox, mockPublisher, 100, zap.NewNop())

		mockOutbox.On("FindTasksToQueue", ctx, 100).Return(commands, nil)
		mockPublisher.On("Publish", ctx, "", publishers.RewardQueue, mock.Anything).
			Return(errors.New("channel closed")).Once()
		mockPublisher.On("Publish", ctx, "", publishers.RewardQueue, mock.Anything).Return(nil)
		mockOutbox.On("MarkTaskAsQueued", ctx, int64(2)).Return(nil)

		err := pub.Publish(ctx)

		assert.NoError(t, err)
		mockOutbox.AssertNotCalled(t, "MarkTaskAsQueued", ctx, int64(1))
	})

	t.Run("Empty backlog publishes nothing", func(t *testing.T) {
		mockOutbox := &mocks.RewardOutboxService{}
		mockPublisher := &mocks.Publisher{}
		pub := publishers.NewRewardPublisher(mockOutbox, mockPublisher, 100, zap.NewNop())

		mockOutbox.On("FindTasksToQueue", ctx, 100).Return(nil, nil)

		err := pub.Publish(ctx)

		assert.NoError(t, err)
		mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Backlog query failure propagates", func(t *testing.T) {
		mockOutbox := &mocks.RewardOutboxService{}
		mockPublisher := &mocks.Publisher{}
		pub := publishers.NewRewardPublisher(mockOutbox, mockPublisher, 100, zap.NewNop())

		mockOutbox.On("FindTasksToQueue", ctx, 100).Return(nil, errors.New("connection reset"))

		err := pub.Publish(ctx)

		assert.Error(t, err)
	})
}
