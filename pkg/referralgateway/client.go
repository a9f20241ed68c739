package referralgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/somonplay/payment-service/pkg/httpclient"
)

const TriggerRewardEndpoint = "/api/referral/trigger-reward"

type ReferralGateway interface {
	TriggerReward(ctx context.Context, request TriggerRewardRequest) (Response, error)
}

type referralGateway struct {
	client httpclient.HTTPClient
	config Config
}

func NewReferralGateway(cfg Config, client httpclient.HTTPClient) ReferralGateway {
	return &referralGateway{config: cfg, client: client}
}

func (g *referralGateway) TriggerReward(ctx context.Context, request TriggerRewardRequest) (Response, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return Response{}, fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if g.config.APIKey != "" {
		headers["Authorization"] = "Bearer " + g.config.APIKey
	}

	resp, err := g.client.Post(ctx, g.config.BaseURL+TriggerRewardEndpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Response{}, ErrTimeout
		}

		return Response{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode == StatusOK {
		var response Response
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			return Response{}, fmt.Errorf("decoding error: %w", err)
		}

		return response, nil
	}

	return Response{}, MapStatusToError(resp.StatusCode)
}
