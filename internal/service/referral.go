package service

import (
	"context"
	"errors"

	"github.com/somonplay/payment-service/internal/config"
	"github.com/somonplay/payment-service/pkg/referralgateway"
	"go.uber.org/zap"
)

type ReferralService interface {
	TriggerFirstPurchase(ctx context.Context, cmd TriggerReferralCommand) error
}

type Referral struct {
	gateway  referralgateway.ReferralGateway
	maxRetry int
	logger   *zap.Logger
}

func NewReferralService(gateway referralgateway.ReferralGateway, cfg *config.Config,
	logger *zap.Logger) ReferralService {
	maxRetry := cfg.ReferralGateway.MaxRetries
	if maxRetry <= 0 {
		maxRetry = 1
	}
	return &Referral{gateway: gateway, maxRetry: maxRetry, logger: logger}
}

func (r *Referral) TriggerFirstPurchase(ctx context.Context, cmd TriggerReferralCommand) error {
	amount, _ := cmd.Amount.Float64()
	request := referralgateway.TriggerRewardRequest{
		UserID:    cmd.UserID,
		EventType: referralgateway.EventTypeFirstPurchase,
		EventData: referralgateway.EventData{
			OrderID:       cmd.OrderID,
			TransactionID: cmd.TransactionID,
			Amount:        amount,
			CoinsReceived: cmd.CoinsReceived,
		},
	}

	var lastErr error
	for attempt := 1; attempt <= r.maxRetry; attempt++ {
		resp, err := r.gateway.TriggerReward(ctx, request)
		if err == nil {
			r.logger.Info("Referral reward triggered",
				zap.String("userID", cmd.UserID),
				zap.String("orderID", cmd.OrderID),
				zap.Int("attempt", attempt),
				zap.Int("rewardsGranted", resp.Result.RewardsGranted))

			return nil
		}

		if errors.Is(err, referralgateway.ErrUserNotFound) ||
			errors.Is(err, referralgateway.ErrValidationFailed) {
			r.logger.Warn("Non-retryable referral trigger error",
				zap.Error(err),
				zap.Int("attempt", attempt),
				zap.String("userID", cmd.UserID))
			return NewServiceError(ErrCodeReferralServiceError, err)
		}

		lastErr = err
	}

	if errors.Is(lastErr, referralgateway.ErrTimeout) {
		r.logger.Error("Referral trigger attempts timed out",
			zap.Error(lastErr),
			zap.Int("maxRetries", r.maxRetry),
			zap.String("userID", cmd.UserID))
		return NewServiceError(ErrCodeTriggerTimeout, lastErr)
	}

	r.logger.Error("Referral service unavailable after all retries",
		zap.Error(lastErr),
		zap.Int("maxRetries", r.maxRetry),
		zap.String("userID", cmd.UserID))

	return NewServiceError(ErrCodeReferralServiceError, lastErr)
}
