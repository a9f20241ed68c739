package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/somonplay/payment-service/internal/constants"
	"github.com/somonplay/payment-service/internal/model"
	"github.com/somonplay/payment-service/internal/repository"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
}

type order struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	logger *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository,
	logger *zap.Logger) OrderService {
	return &order{orders: orders, users: users, logger: logger}
}

func (s *order) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if _, err := s.users.GetByID(cmd.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return CreateOrderResult{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}

		return CreateOrderResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	payload := model.RechargePayload{
		Version:     model.RechargePayloadVersion,
		PackageID:   cmd.PackageID,
		PackageName: cmd.PackageName,
		Coins:       cmd.Coins,
		BonusCoins:  cmd.BonusCoins,
	}

	notes, err := payload.Encode()
	if err != nil {
		return CreateOrderResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	id := uuid.NewString()
	newOrder := model.Order{
		ID:                id,
		OrderNumber:       newOrderNumber(id),
		UserID:            cmd.UserID,
		Type:              model.OrderTypeRecharge,
		TotalAmount:       cmd.Amount,
		PaymentMethod:     cmd.PaymentMethod,
		PaymentStatus:     model.PaymentStatusPending,
		FulfillmentStatus: model.FulfillmentStatusPending,
		Notes:             notes,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := s.orders.Create(ctx, &newOrder); err != nil {
		if errors.Is(err, repository.ErrOrderDuplicate) {
			s.logger.Warn("Duplicate order number",
				zap.String("orderNumber", newOrder.OrderNumber),
				zap.String("userID", cmd.UserID))
			return CreateOrderResult{}, NewServiceError(constants.ErrCodeDuplicateOrder, err)
		}

		return CreateOrderResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	s.logger.Info("Recharge order created",
		zap.String("orderID", newOrder.ID),
		zap.String("orderNumber", newOrder.OrderNumber),
		zap.String("userID", cmd.UserID),
		zap.String("amount", cmd.Amount.String()))

	return CreateOrderResult{OrderID: newOrder.ID, OrderNumber: newOrder.OrderNumber}, nil
}

func (s *order) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	ord, err := s.orders.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, NewServiceError(constants.ErrCodeOrderNotFound, err)
		}

		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return ord, nil
}

func newOrderNumber(orderID string) string {
	short := strings.ToUpper(strings.ReplaceAll(orderID, "-", ""))[:12]
	return fmt.Sprintf("RC%s%s", time.Now().Format("20060102"), short)
}
