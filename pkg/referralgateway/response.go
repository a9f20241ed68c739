package referralgateway

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	TrackID string `json:"x_track_id,omitempty"`
	Result  Result `json:"result,omitempty"`
}

type Result struct {
	RewardsGranted int   `json:"rewards_granted"`
	TotalAmount    int64 `json:"total_amount"`
}
