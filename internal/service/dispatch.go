package service

import (
	"context"
	"errors"

	"github.com/somonplay/payment-service/internal/model"
	"github.com/somonplay/payment-service/internal/repository"
	"github.com/somonplay/payment-service/pkg/mq"
	"go.uber.org/zap"
)

type RewardDispatchService interface {
	Dispatch(ctx context.Context, cmd DispatchRewardCommand) error
}

type rewardDispatch struct {
	users         repository.UserRepository
	tasks         repository.RewardTaskRepository
	referral      ReferralService
	firstRecharge FirstRechargeService
	logger        *zap.Logger
}

func NewRewardDispatchService(users repository.UserRepository, tasks repository.RewardTaskRepository,
	referral ReferralService, firstRecharge FirstRechargeService, logger *zap.Logger) RewardDispatchService {
	return &rewardDispatch{users: users, tasks: tasks, referral: referral,
		firstRecharge: firstRecharge, logger: logger}
}

// Dispatch runs the post-commit reward fan-out for one outbox task. Referral
// and first-recharge flows are independent of each other and of the credit
// that enqueued the task; nothing here can roll the credit back.
func (d *rewardDispatch) Dispatch(ctx context.Context, cmd DispatchRewardCommand) error {
	task, err := d.tasks.GetByID(cmd.TaskID)
	if err != nil {
		if errors.Is(err, repository.ErrRewardTaskNotFound) {
			d.logger.Warn("Reward task not found, dropping", zap.Int64("taskID", cmd.TaskID))
			return nil
		}

		return mq.Temporary(err)
	}

	if task.State == model.RewardTaskStateSuccess {
		d.logger.Info("Reward task already dispatched", zap.Int64("taskID", task.ID))
		return nil
	}

	user, err := d.users.GetByID(task.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			d.logger.Error("Inconsistent state: reward task references missing user",
				zap.Int64("taskID", task.ID),
				zap.String("userID", task.UserID))

			msg := repository.ErrUserNotFound.Error()
			if ferr := d.tasks.Finalize(ctx, task.ID, model.RewardTaskStateFailed, &msg); ferr != nil {
				return mq.Temporary(ferr)
			}

			return nil
		}

		return mq.Temporary(err)
	}

	d.triggerReferral(ctx, task, user)

	grantCmd := GrantFirstRechargeCommand{UserID: task.UserID, OrderID: task.OrderID, Amount: task.Amount}
	result, err := d.firstRecharge.Grant(ctx, grantCmd)
	if err != nil {
		d.logger.Error("First-recharge grant failed, will retry",
			zap.Error(err),
			zap.Int64("taskID", task.ID),
			zap.String("userID", task.UserID))

		msg := err.Error()
		if ferr := d.tasks.Finalize(ctx, task.ID, model.RewardTaskStateFailed, &msg); ferr != nil {
			return mq.Temporary(ferr)
		}

		return mq.Temporary(err)
	}

	if !result.Granted {
		d.logger.Info("First-recharge reward not granted",
			zap.Int64("taskID", task.ID),
			zap.String("userID", task.UserID),
			zap.String("reason", result.Reason))
	}

	if err := d.tasks.Finalize(ctx, task.ID, model.RewardTaskStateSuccess, nil); err != nil {
		return mq.Temporary(err)
	}

	return nil
}

// triggerReferral is best-effort: any failure is logged and swallowed so it
// can never fail the task or re-trigger the credit.
func (d *rewardDispatch) triggerReferral(ctx context.Context, task *model.RewardTask, user *model.User) {
	if user.HasFirstPurchase {
		return
	}

	cmd := TriggerReferralCommand{
		UserID:        task.UserID,
		OrderID:       task.OrderID,
		TransactionID: task.TransactionID,
		Amount:        task.Amount,
		CoinsReceived: task.Coins,
	}

	if err := d.referral.TriggerFirstPurchase(ctx, cmd); err != nil {
		d.logger.Warn("Referral trigger failed, swallowed",
			zap.Error(err),
			zap.Int64("taskID", task.ID),
			zap.String("userID", task.UserID))
		return
	}

	if err := d.users.MarkFirstPurchase(ctx, task.UserID); err != nil {
		d.logger.Warn("Failed to mark first purchase flag",
			zap.Error(err),
			zap.String("userID", task.UserID))
	}
}
