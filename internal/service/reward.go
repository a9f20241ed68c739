package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/somonplay/payment-service/internal/model"
	"github.com/somonplay/payment-service/internal/repository"
	"go.uber.org/zap"
)

const (
	RejectReasonNotFirstRecharge = "user has a prior completed recharge"
	RejectReasonNoTier           = "no reward tier for amount"
	RejectReasonAlreadyGranted   = "reward already granted"
)

type FirstRechargeService interface {
	Grant(ctx context.Context, cmd GrantFirstRechargeCommand) (GrantResult, error)
}

type firstRecharge struct {
	orders        repository.OrderRepository
	users         repository.UserRepository
	grants        repository.RewardGrantRepository
	wallet        repository.WalletTransactionRepository
	notifications repository.NotificationRepository
	txManager     repository.TxManager
	tiers         map[int64]int64
	logger        *zap.Logger
}

// NewFirstRechargeService builds the grant flow around a fixed tier table
// (recharge amount -> bonus coins) resolved once from config.
func NewFirstRechargeService(orders repository.OrderRepository, users repository.UserRepository,
	grants repository.RewardGrantRepository, wallet repository.WalletTransactionRepository,
	notifications repository.NotificationRepository, txManager repository.TxManager,
	tiers map[int64]int64, logger *zap.Logger) FirstRechargeService {
	return &firstRecharge{orders: orders, users: users, grants: grants, wallet: wallet,
		notifications: notifications, txManager: txManager, tiers: tiers, logger: logger}
}

// Grant credits the first-recharge bonus at most once per (user, tier).
// Rejections come back as a reason string with a nil error; a returned error
// always means storage trouble and is safe to retry.
func (s *firstRecharge) Grant(ctx context.Context, cmd GrantFirstRechargeCommand) (GrantResult, error) {
	hasPrior, err := s.orders.HasCompletedRecharge(cmd.UserID, cmd.OrderID)
	if err != nil {
		return GrantResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	if hasPrior {
		return GrantResult{Reason: RejectReasonNotFirstRecharge}, nil
	}

	if !cmd.Amount.IsInteger() {
		return GrantResult{Reason: RejectReasonNoTier}, nil
	}

	tier := cmd.Amount.IntPart()
	reward, ok := s.tiers[tier]
	if !ok {
		return GrantResult{Reason: RejectReasonNoTier}, nil
	}

	orderID := cmd.OrderID
	grant := &model.RewardGrant{
		UserID:         cmd.UserID,
		RechargeAmount: tier,
		RewardAmount:   reward,
		Status:         model.RewardGrantStatusClaimed,
		ClaimedAt:      time.Now(),
	}

	walletTx := &model.WalletTransaction{
		UserID:         cmd.UserID,
		Type:           model.WalletTxTypeFirstRechargeReward,
		Amount:         reward,
		Currency:       model.CurrencyTJS,
		RelatedOrderID: &orderID,
		Description:    fmt.Sprintf("首充奖励：充值%d Som获得%d Som奖励", tier, reward),
		Status:         model.WalletTxStatusCompleted,
	}

	notification := &model.Notification{
		UserID:  cmd.UserID,
		Type:    model.WalletTxTypeFirstRechargeReward,
		Content: fmt.Sprintf("恭喜！首充奖励已到账：+%d Som", reward),
		Status:  model.NotificationStatusPending,
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.grants.Create(ctx, grant); err != nil {
			return err
		}

		if err := s.users.IncrementBalance(ctx, cmd.UserID, reward); err != nil {
			return err
		}

		if err := s.wallet.Create(ctx, walletTx); err != nil {
			return err
		}

		return s.notifications.Create(ctx, notification)
	})
	if err == nil {
		s.logger.Info("First-recharge reward granted",
			zap.String("userID", cmd.UserID),
			zap.String("orderID", cmd.OrderID),
			zap.Int64("rechargeAmount", tier),
			zap.Int64("rewardAmount", reward))

		return GrantResult{Granted: true, RewardAmount: reward}, nil
	}

	if errors.Is(err, repository.ErrRewardGrantExists) {
		s.logger.Info("First-recharge reward already granted",
			zap.String("userID", cmd.UserID),
			zap.Int64("rechargeAmount", tier))
		return GrantResult{Reason: RejectReasonAlreadyGranted}, nil
	}

	return GrantResult{}, NewServiceError(ErrCodeDatabase, err)
}
