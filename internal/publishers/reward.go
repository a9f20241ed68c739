package publishers

import (
	"context"
	"encoding/json"

	"github.com/somonplay/payment-service/internal/service"
	"github.com/somonplay/payment-service/pkg/mq"
	"go.uber.org/zap"
)

const RewardQueue = "payment.reward"

type RewardPublisher interface {
	Publish(ctx context.Context) error
}

type rewardPublisher struct {
	service   service.RewardOutboxService
	publisher mq.Publisher
	batchSize int
	logger    *zap.Logger
}

func NewRewardPublisher(outbox service.RewardOutboxService, publisher mq.Publisher, batchSize int,
	logger *zap.Logger) RewardPublisher {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &rewardPublisher{service: outbox, publisher: publisher, batchSize: batchSize, logger: logger}
}

func (r *rewardPublisher) Publish(ctx context.Context) error {
	tasks, err := r.service.FindTasksToQueue(ctx, r.batchSize)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		return nil
	}

	r.logger.Info("Publishing reward tasks", zap.Int("count", len(tasks)))

	successCount := 0
	for _, task := range tasks {
		body, _ := json.Marshal(task)
		if err := r.publisher.Publish(ctx, "", RewardQueue, body); err != nil {
			r.logger.Error("Failed to publish reward task",
				zap.Error(err),
				zap.Int64("taskID", task.TaskID))
			continue
		}

		if err := r.service.MarkTaskAsQueued(ctx, task.TaskID); err != nil {
			continue
		}

		successCount++
	}

	if successCount > 0 {
		r.logger.Info("Successfully published reward tasks",
			zap.Int("published", successCount),
			zap.Int("total", len(tasks)))
	}

	return nil
}
