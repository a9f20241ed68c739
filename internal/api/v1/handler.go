package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/somonplay/payment-service/internal/constants"
	"github.com/somonplay/payment-service/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	logger  *zap.Logger
	orders  service.OrderService
	confirm service.ConfirmService
}

func NewHandler(logger *zap.Logger, orders service.OrderService, confirm service.ConfirmService) *Handler {
	return &Handler{logger: logger, orders: orders, confirm: confirm}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CreateOrderRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	cmd := service.CreateOrderCommand{
		UserID:        request.UserID,
		PackageID:     request.PackageID,
		PackageName:   request.PackageName,
		Amount:        decimal.NewFromFloat(request.Amount),
		PaymentMethod: request.PaymentMethod,
		Coins:         request.Coins,
		BonusCoins:    request.BonusCoins,
	}

	resp, err := h.orders.CreateOrder(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to create recharge order",
			zap.Error(err),
			zap.String("userID", request.UserID))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(CreateOrderResponse{
		OrderID:       resp.OrderID,
		OrderNumber:   resp.OrderNumber,
		PaymentStatus: "pending",
	})
}

// ConfirmPayment is the mock-gateway callback. Duplicate deliveries are a
// normal outcome here, never an error response.
func (h *Handler) ConfirmPayment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request ConfirmPaymentRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	cmd := service.ConfirmPaymentCommand{
		OrderID:       request.OrderID,
		TransactionID: request.TransactionID,
	}

	result, err := h.confirm.ConfirmPayment(ctx, cmd)
	if err != nil {
		h.logger.Error("Payment confirmation failed",
			zap.Error(err),
			zap.String("orderID", request.OrderID),
			zap.String("transactionID", request.TransactionID))
		return err
	}

	return c.Status(fiber.StatusOK).JSON(ConfirmPaymentResponse{
		Outcome:       string(result.Outcome),
		OrderID:       result.OrderID,
		TransactionID: result.TransactionID,
		Credited:      result.Credited,
		Reason:        result.Reason,
	})
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	ctx := c.UserContext()

	order, err := h.orders.GetOrder(ctx, c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(GetOrderResponse{
		OrderID:           order.ID,
		OrderNumber:       order.OrderNumber,
		UserID:            order.UserID,
		Type:              order.Type,
		TotalAmount:       order.TotalAmount.String(),
		PaymentStatus:     string(order.PaymentStatus),
		FulfillmentStatus: string(order.FulfillmentStatus),
		CreatedAt:         order.CreatedAt.Format(time.RFC3339),
	})
}
