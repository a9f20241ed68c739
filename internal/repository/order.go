package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/somonplay/payment-service/internal/model"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("ORDER_NOT_FOUND")
var ErrOrderDuplicate = errors.New("ORDER_DUPLICATE")

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(id string) (*model.Order, error)
	MarkPaid(ctx context.Context, orderID string) (int64, error)
	UpdateNotes(ctx context.Context, orderID string, notes string) error
	FindPaidWithoutLedger(limit int) ([]model.Order, error)
	HasCompletedRecharge(userID string, excludeOrderID string) (bool, error)
}

type Order struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &Order{db: db}
}

func (r *Order) Create(ctx context.Context, order *model.Order) error {
	db := GetTx(ctx, r.db)
	err := db.Create(order).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrOrderDuplicate
	}

	return err
}

func (r *Order) GetByID(id string) (*model.Order, error) {
	var order model.Order

	err := r.db.Where("id = ?", id).First(&order).Error
	if err == nil {
		return &order, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}

	return nil, err
}

// MarkPaid flips a pending order to paid/completed in one conditional update
// and reports how many rows changed. A result of 1 means the caller won the
// race to process this payment; 0 means the order was already handled or does
// not exist.
func (r *Order) MarkPaid(ctx context.Context, orderID string) (int64, error) {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.Order{}).
		Where("id = ? AND payment_status = ?", orderID, model.PaymentStatusPending).
		Updates(map[string]interface{}{
			"payment_status":     model.PaymentStatusPaid,
			"fulfillment_status": model.FulfillmentStatusCompleted,
			"updated_at":         time.Now(),
		})

	return result.RowsAffected, result.Error
}

func (r *Order) UpdateNotes(ctx context.Context, orderID string, notes string) error {
	db := GetTx(ctx, r.db)

	return db.Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{"notes": notes, "updated_at": time.Now()}).Error
}

// FindPaidWithoutLedger lists paid recharge orders that have no wallet
// transaction referencing them. These are the orders stranded by a failure
// between the status flip and the credit commit.
func (r *Order) FindPaidWithoutLedger(limit int) ([]model.Order, error) {
	var orders []model.Order

	err := r.db.
		Where("type = ? AND payment_status = ?", model.OrderTypeRecharge, model.PaymentStatusPaid).
		Where("NOT EXISTS (SELECT 1 FROM wallet_transactions wt WHERE wt.related_order_id = orders.id)").
		Order("updated_at ASC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *Order) HasCompletedRecharge(userID string, excludeOrderID string) (bool, error) {
	var count int64

	err := r.db.Model(&model.Order{}).
		Where("user_id = ? AND type = ? AND payment_status = ? AND fulfillment_status = ?",
			userID, model.OrderTypeRecharge, model.PaymentStatusPaid, model.FulfillmentStatusCompleted).
		Where("id <> ?", excludeOrderID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
