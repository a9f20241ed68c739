package service

// Outcome tags the routine results of the payment-success handler. An
// already-handled confirmation is an expected path, not an error.
type Outcome string

const (
	OutcomeProcessed      Outcome = "processed"
	OutcomeAlreadyHandled Outcome = "already_handled"
	OutcomeFailed         Outcome = "failed"
)

type ConfirmPaymentResult struct {
	Outcome       Outcome `json:"outcome"`
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	Credited      int64   `json:"credited"`
	Reason        string  `json:"reason,omitempty"`
}

type CreateOrderResult struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

type GrantResult struct {
	Granted      bool
	RewardAmount int64
	Reason       string
}
