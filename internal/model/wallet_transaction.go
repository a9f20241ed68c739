package model

import "time"

const (
	WalletTxTypeRecharge            = "recharge"
	WalletTxTypeFirstRechargeReward = "first_recharge_reward"
)

const WalletTxStatusCompleted = "completed"

const CurrencyTJS = "TJS"

// WalletTransaction is an append-only ledger entry for a balance-affecting
// event.
type WalletTransaction struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;<-:create"`
	UserID         string    `gorm:"type:char(36);not null;index;<-:create"`
	Type           string    `gorm:"type:varchar(32);not null"`
	Amount         int64     `gorm:"not null"`
	Currency       string    `gorm:"type:varchar(8);not null"`
	RelatedOrderID *string   `gorm:"type:char(36);null;index"`
	Description    string    `gorm:"type:varchar(255)"`
	Status         string    `gorm:"type:varchar(20);not null;default:'completed'"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}
