package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/somonplay/payment-service/internal/constants"
	"github.com/somonplay/payment-service/internal/model"
	"github.com/somonplay/payment-service/internal/repository"
	"go.uber.org/zap"
)

type ConfirmService interface {
	ConfirmPayment(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmPaymentResult, error)
	RecoverOrder(ctx context.Context, cmd RecoverOrderCommand) error
}

type confirm struct {
	orders        repository.OrderRepository
	users         repository.UserRepository
	wallet        repository.WalletTransactionRepository
	notifications repository.NotificationRepository
	rewardTasks   repository.RewardTaskRepository
	processLog    repository.ProcessLogRepository
	txManager     repository.TxManager
	logger        *zap.Logger
}

func NewConfirmService(orders repository.OrderRepository, users repository.UserRepository,
	wallet repository.WalletTransactionRepository, notifications repository.NotificationRepository,
	rewardTasks repository.RewardTaskRepository, processLog repository.ProcessLogRepository,
	txManager repository.TxManager, logger *zap.Logger) ConfirmService {
	return &confirm{orders: orders, users: users, wallet: wallet, notifications: notifications,
		rewardTasks: rewardTasks, processLog: processLog, txManager: txManager, logger: logger}
}

// ConfirmPayment applies the effects of a payment-success signal exactly once.
// The conditional update in MarkPaid is the correctness boundary; the
// processing-log pre-check only short-circuits obvious replays. Duplicate
// invocations come back as OutcomeAlreadyHandled with a nil error.
func (s *confirm) ConfirmPayment(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmPaymentResult, error) {
	result := ConfirmPaymentResult{OrderID: cmd.OrderID, TransactionID: cmd.TransactionID}

	done, err := s.processLog.HasCompleted(cmd.OrderID, model.OperationPaymentConfirm)
	if err != nil {
		result.Outcome = OutcomeFailed
		return result, NewServiceError(ErrCodeDatabase, err)
	}

	if done {
		s.logger.Info("Payment confirmation already completed, skipping",
			zap.String("orderID", cmd.OrderID),
			zap.String("transactionID", cmd.TransactionID))
		result.Outcome = OutcomeAlreadyHandled
		result.Reason = constants.ErrCodeOrderAlreadyProcessed
		return result, nil
	}

	entry, err := s.beginProcessLog(ctx, cmd)
	if err != nil {
		result.Outcome = OutcomeFailed
		return result, err
	}

	if entry == nil {
		// an earlier attempt with this dedup key already completed
		result.Outcome = OutcomeAlreadyHandled
		result.Reason = constants.ErrCodeOrderAlreadyProcessed
		return result, nil
	}

	finalStatus := model.ProcessLogStatusFailed
	var finalError *string

	defer func() {
		if ferr := s.processLog.Finalize(ctx, entry.ID, finalStatus, finalError); ferr != nil {
			s.logger.Error("Failed to finalize processing log",
				zap.Error(ferr),
				zap.Int64("processLogID", entry.ID),
				zap.String("orderID", cmd.OrderID))
		}
	}()

	order, err := s.orders.GetByID(cmd.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			s.logger.Warn("Order not found for payment confirmation",
				zap.String("orderID", cmd.OrderID))
			msg := constants.ErrMsgOrderNotFound
			finalError = &msg
			result.Outcome = OutcomeFailed
			result.Reason = constants.ErrCodeOrderNotFound
			return result, NewServiceError(constants.ErrCodeOrderNotFound, err)
		}

		msg := err.Error()
		finalError = &msg
		result.Outcome = OutcomeFailed
		return result, NewServiceError(ErrCodeDatabase, err)
	}

	rows, err := s.orders.MarkPaid(ctx, cmd.OrderID)
	if err != nil {
		msg := err.Error()
		finalError = &msg
		result.Outcome = OutcomeFailed
		return result, NewServiceError(ErrCodeDatabase, err)
	}

	if rows == 0 {
		s.logger.Info("Order already processed by another caller, skipping",
			zap.String("orderID", cmd.OrderID),
			zap.String("transactionID", cmd.TransactionID))
		reason := constants.ErrMsgOrderAlreadyProcessed
		finalError = &reason
		result.Outcome = OutcomeAlreadyHandled
		result.Reason = constants.ErrCodeOrderAlreadyProcessed
		return result, nil
	}

	credited, err := s.creditOrder(ctx, order, cmd.TransactionID)
	if err != nil {
		s.logger.Error("Balance credit failed after status flip, order needs reconciliation",
			zap.Error(err),
			zap.String("orderID", cmd.OrderID),
			zap.String("transactionID", cmd.TransactionID))
		msg := err.Error()
		finalError = &msg
		result.Outcome = OutcomeFailed
		result.Reason = ErrCodeDatabase
		return result, NewServiceError(ErrCodeDatabase, err)
	}

	s.logger.Info("Payment confirmed successfully",
		zap.String("orderID", cmd.OrderID),
		zap.String("transactionID", cmd.TransactionID),
		zap.Int64("credited", credited))

	finalStatus = model.ProcessLogStatusCompleted
	result.Outcome = OutcomeProcessed
	result.Credited = credited
	return result, nil
}

// beginProcessLog creates the attempt entry. On a dedup-key collision it
// adopts the existing row so a crashed attempt can be retried; a nil entry
// with nil error means the work is already done.
func (s *confirm) beginProcessLog(ctx context.Context, cmd ConfirmPaymentCommand) (*model.ProcessLog, error) {
	entry := &model.ProcessLog{
		EntityID:  cmd.OrderID,
		Operation: model.OperationPaymentConfirm,
		DedupKey:  cmd.TransactionID,
		Status:    model.ProcessLogStatusProcessing,
	}

	err := s.processLog.Create(ctx, entry)
	if err == nil {
		return entry, nil
	}

	if !errors.Is(err, repository.ErrProcessLogDuplicate) {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	existing, err := s.processLog.GetByKey(cmd.OrderID, model.OperationPaymentConfirm, cmd.TransactionID)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	if existing.Status == model.ProcessLogStatusCompleted {
		s.logger.Info("Duplicate confirmation for completed attempt",
			zap.String("orderID", cmd.OrderID),
			zap.String("transactionID", cmd.TransactionID))
		return nil, nil
	}

	return existing, nil
}

// creditOrder runs the all-or-nothing side-effect transaction: annotate the
// order payload, bump the balance, append the ledger row, write the
// notification, and enqueue the reward task. Runs only after winning the
// conditional update.
func (s *confirm) creditOrder(ctx context.Context, order *model.Order, transactionID string) (int64, error) {
	payload, err := model.DecodeRechargePayload(order.Notes)
	if err != nil {
		return 0, err
	}

	credit := payload.Credit()
	payload.Annotate(transactionID)

	notes, err := payload.Encode()
	if err != nil {
		return 0, err
	}

	orderID := order.ID
	walletTx := &model.WalletTransaction{
		UserID:         order.UserID,
		Type:           model.WalletTxTypeRecharge,
		Amount:         credit,
		Currency:       model.CurrencyTJS,
		RelatedOrderID: &orderID,
		Description:    fmt.Sprintf("充值订单%s到账：+%d金币", order.OrderNumber, credit),
		Status:         model.WalletTxStatusCompleted,
	}

	notification := &model.Notification{
		UserID:  order.UserID,
		Type:    model.WalletTxTypeRecharge,
		Content: fmt.Sprintf("充值成功：+%d金币", credit),
		Status:  model.NotificationStatusPending,
	}

	task := &model.RewardTask{
		OrderID:       order.ID,
		UserID:        order.UserID,
		TransactionID: transactionID,
		Amount:        order.TotalAmount,
		Coins:         credit,
		State:         model.RewardTaskStateCreated,
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateNotes(ctx, order.ID, notes); err != nil {
			return err
		}

		if err := s.users.IncrementBalance(ctx, order.UserID, credit); err != nil {
			return err
		}

		if err := s.wallet.Create(ctx, walletTx); err != nil {
			return err
		}

		if err := s.notifications.Create(ctx, notification); err != nil {
			return err
		}

		return s.rewardTasks.Create(ctx, task)
	})
	if err != nil {
		return 0, err
	}

	return credit, nil
}

// RecoverOrder re-runs the credit transaction for a paid order that has no
// wallet transaction. It is the repair path for a crash between the status
// flip and the credit commit.
func (s *confirm) RecoverOrder(ctx context.Context, cmd RecoverOrderCommand) error {
	order, err := s.orders.GetByID(cmd.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			s.logger.Error("Inconsistent state: paid order vanished before recovery",
				zap.String("orderID", cmd.OrderID))
			return nil
		}

		return NewServiceError(ErrCodeDatabase, err)
	}

	if order.PaymentStatus != model.PaymentStatusPaid {
		return nil
	}

	credited, err := s.wallet.ExistsForOrder(order.ID)
	if err != nil {
		return NewServiceError(ErrCodeDatabase, err)
	}

	if credited {
		return nil
	}

	transactionID, err := s.processLog.LatestDedupKey(order.ID, model.OperationPaymentConfirm)
	if err != nil {
		if !errors.Is(err, repository.ErrProcessLogNotFound) {
			return NewServiceError(ErrCodeDatabase, err)
		}
		// paid without any recorded attempt; annotate with a marker so the
		// repair itself stays auditable
		transactionID = "reconciled"
	}

	credit, err := s.creditOrder(ctx, order, transactionID)
	if err != nil {
		s.logger.Error("Recovery credit failed",
			zap.Error(err),
			zap.String("orderID", order.ID))
		return NewServiceError(ErrCodeDatabase, err)
	}

	if entry, err := s.processLog.GetByKey(order.ID, model.OperationPaymentConfirm, transactionID); err == nil {
		if ferr := s.processLog.Finalize(ctx, entry.ID, model.ProcessLogStatusCompleted, nil); ferr != nil {
			s.logger.Error("Failed to finalize processing log after recovery",
				zap.Error(ferr),
				zap.String("orderID", order.ID))
		}
	}

	s.logger.Info("Recovered stranded paid order",
		zap.String("orderID", order.ID),
		zap.String("transactionID", transactionID),
		zap.Int64("credited", credit))

	return nil
}
