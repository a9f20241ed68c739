package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type FulfillmentStatus string

const (
	FulfillmentStatusPending   FulfillmentStatus = "pending"
	FulfillmentStatusCompleted FulfillmentStatus = "completed"
	FulfillmentStatusFailed    FulfillmentStatus = "failed"
)

const OrderTypeRecharge = "recharge"

type Order struct {
	ID                string            `gorm:"primaryKey;type:char(36);<-:create"`
	OrderNumber       string            `gorm:"type:varchar(64);uniqueIndex;not null;<-:create"`
	UserID            string            `gorm:"type:char(36);not null;index;<-:create"`
	Type              string            `gorm:"type:varchar(32);not null"`
	TotalAmount       decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	PaymentMethod     string            `gorm:"type:varchar(32);not null"`
	PaymentStatus     PaymentStatus     `gorm:"type:enum('pending','paid','failed','refunded');not null;default:'pending'"`
	FulfillmentStatus FulfillmentStatus `gorm:"type:enum('pending','completed','failed');not null;default:'pending'"`
	Notes             string            `gorm:"type:text"`
	CreatedAt         time.Time         `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt         time.Time         `gorm:"type:timestamp;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}
