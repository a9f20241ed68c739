package referralgateway

const (
	EventTypeFirstPurchase = "first_purchase"
	EventTypeFirstLottery  = "first_lottery"
)

type TriggerRewardRequest struct {
	UserID    string    `json:"user_id"`
	EventType string    `json:"event_type"`
	EventData EventData `json:"event_data"`
}

type EventData struct {
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	CoinsReceived int64   `json:"coins_received"`
}
