package v1

type CreateOrderResponse struct {
	OrderID       string `json:"order_id"`
	OrderNumber   string `json:"order_number"`
	PaymentStatus string `json:"payment_status"`
}

type ConfirmPaymentResponse struct {
	Outcome       string `json:"outcome"`
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	Credited      int64  `json:"credited"`
	Reason        string `json:"reason,omitempty"`
}

type GetOrderResponse struct {
	OrderID           string `json:"order_id"`
	OrderNumber       string `json:"order_number"`
	UserID            string `json:"user_id"`
	Type              string `json:"type"`
	TotalAmount       string `json:"total_amount"`
	PaymentStatus     string `json:"payment_status"`
	FulfillmentStatus string `json:"fulfillment_status"`
	CreatedAt         string `json:"created_at"`
}
