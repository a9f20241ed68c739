package service

import (
	"context"

	"github.com/somonplay/payment-service/internal/repository"
	"go.uber.org/zap"
)

type RewardOutboxService interface {
	FindTasksToQueue(ctx context.Context, limit int) ([]DispatchRewardCommand, error)
	MarkTaskAsQueued(ctx context.Context, taskID int64) error
}

type rewardOutbox struct {
	tasks  repository.RewardTaskRepository
	logger *zap.Logger
}

func NewRewardOutboxService(tasks repository.RewardTaskRepository, logger *zap.Logger) RewardOutboxService {
	return &rewardOutbox{tasks: tasks, logger: logger}
}

func (m *rewardOutbox) FindTasksToQueue(ctx context.Context, limit int) ([]DispatchRewardCommand, error) {
	m.logger.Debug("Finding reward tasks to publish", zap.Int("batchSize", limit))

	tasks, err := m.tasks.FindUnpublished(limit)
	if err != nil {
		m.logger.Error("Failed to find unpublished reward tasks", zap.Error(err))
		return nil, err
	}

	if len(tasks) == 0 {
		return nil, nil
	}

	commands := make([]DispatchRewardCommand, 0, len(tasks))
	for _, task := range tasks {
		commands = append(commands, DispatchRewardCommand{
			TaskID:        task.ID,
			OrderID:       task.OrderID,
			UserID:        task.UserID,
			TransactionID: task.TransactionID,
			Amount:        task.Amount,
			Coins:         task.Coins,
		})
	}

	return commands, nil
}

func (m *rewardOutbox) MarkTaskAsQueued(ctx context.Context, taskID int64) error {
	if err := m.tasks.MarkQueued(ctx, taskID); err != nil {
		m.logger.Error("Failed to mark reward task as published",
			zap.Error(err),
			zap.Int64("taskID", taskID))
		return err
	}

	m.logger.Debug("Successfully marked reward task as published", zap.Int64("taskID", taskID))

	return nil
}
