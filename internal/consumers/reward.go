package consumers

import (
	"context"
	"encoding/json"

	"github.com/somonplay/payment-service/internal/publishers"
	"github.com/somonplay/payment-service/internal/service"
	"github.com/somonplay/payment-service/pkg/mq"
	"go.uber.org/zap"
)

type RewardConsumer interface {
	Consume(ctx context.Context) error
}

type rewardConsumer struct {
	service  service.RewardDispatchService
	consumer mq.Consumer
	prefetch int
	logger   *zap.Logger
}

func NewRewardConsumer(dispatch service.RewardDispatchService, consumer mq.Consumer, prefetch int,
	logger *zap.Logger) RewardConsumer {
	if prefetch <= 0 {
		prefetch = 1
	}
	return &rewardConsumer{service: dispatch, consumer: consumer, prefetch: prefetch, logger: logger}
}

func (r *rewardConsumer) Consume(ctx context.Context) error {
	return r.consumer.Consume(ctx, r.prefetch, publishers.RewardQueue, r.handleMessage)
}

func (r *rewardConsumer) handleMessage(ctx context.Context, body []byte) error {
	r.logger.Info("received reward dispatch command", zap.ByteString("body", body))

	var cmd service.DispatchRewardCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		r.logger.Warn("invalid reward dispatch command", zap.Error(err))
		return err
	}

	return r.service.Dispatch(ctx, cmd)
}
