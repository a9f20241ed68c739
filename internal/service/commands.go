package service

import "github.com/shopspring/decimal"

type CreateOrderCommand struct {
	UserID        string
	PackageID     string
	PackageName   string
	Amount        decimal.Decimal
	PaymentMethod string
	Coins         int64
	BonusCoins    int64
}

type ConfirmPaymentCommand struct {
	OrderID       string
	TransactionID string
}

type RecoverOrderCommand struct {
	OrderID string
}

// DispatchRewardCommand is the queue message body for one reward task.
type DispatchRewardCommand struct {
	TaskID        int64           `json:"task_id"`
	OrderID       string          `json:"order_id"`
	UserID        string          `json:"user_id"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Coins         int64           `json:"coins"`
}

type GrantFirstRechargeCommand struct {
	UserID  string
	OrderID string
	Amount  decimal.Decimal
}

type TriggerReferralCommand struct {
	UserID        string
	OrderID       string
	TransactionID string
	Amount        decimal.Decimal
	CoinsReceived int64
}
