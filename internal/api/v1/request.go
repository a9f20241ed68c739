package v1

type CreateOrderRequest struct {
	UserID        string  `json:"user_id"`
	PackageID     string  `json:"package_id"`
	PackageName   string  `json:"package_name"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Coins         int64   `json:"coins"`
	BonusCoins    int64   `json:"bonus_coins"`
}

type ConfirmPaymentRequest struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
}
