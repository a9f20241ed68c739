package model

import (
	"encoding/json"
	"fmt"
)

const RechargePayloadVersion = 1

// RechargePayload is the structured order notes body. The gateway transaction
// reference is an explicit field so a replayed confirmation cannot append a
// second annotation.
type RechargePayload struct {
	Version     int    `json:"version"`
	PackageID   string `json:"package_id"`
	PackageName string `json:"package_name"`
	Coins       int64  `json:"coins"`
	BonusCoins  int64  `json:"bonus_coins"`
	TxRef       string `json:"tx_ref,omitempty"`
}

func (p *RechargePayload) Credit() int64 {
	return p.Coins + p.BonusCoins
}

func (p *RechargePayload) Annotate(transactionID string) {
	if p.TxRef != "" {
		return
	}
	p.TxRef = fmt.Sprintf("交易ID: %s", transactionID)
}

func (p *RechargePayload) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func DecodeRechargePayload(notes string) (*RechargePayload, error) {
	var payload RechargePayload
	if err := json.Unmarshal([]byte(notes), &payload); err != nil {
		return nil, fmt.Errorf("invalid order payload: %w", err)
	}
	return &payload, nil
}
