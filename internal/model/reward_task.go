package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RewardTaskStateCreated = "CREATED"
	RewardTaskStatePending = "PENDING"
	RewardTaskStateSuccess = "SUCCESS"
	RewardTaskStateFailed  = "FAILED"
)

// RewardTask is the outbox row for post-payment reward dispatch. It is written
// in the same transaction as the balance credit and drained by the publisher.
type RewardTask struct {
	ID            int64           `gorm:"primaryKey;autoIncrement;<-:create"`
	OrderID       string          `gorm:"type:char(36);not null;uniqueIndex;<-:create"`
	UserID        string          `gorm:"type:char(36);not null;<-:create"`
	TransactionID string          `gorm:"type:varchar(128);not null;<-:create"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Coins         int64           `gorm:"not null"`
	State         string          `gorm:"type:enum('CREATED','PENDING','SUCCESS','FAILED');not null"`
	Published     bool            `gorm:"default:false;not null"`
	PublishedAt   *time.Time      `gorm:"type:timestamp;null"`
	LastError     *string         `gorm:"type:text;null"`
	CreatedAt     time.Time       `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time       `gorm:"type:timestamp;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}
