package referralgateway_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/somonplay/payment-service/pkg/mocks"
	"github.com/somonplay/payment-service/pkg/referralgateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func matchRequestBody(request referralgateway.TriggerRewardRequest) interface{} {
	return mock.MatchedBy(func(body interface{}) bool {
		buf, ok := body.(*bytes.Buffer)
		if !ok {
			return false
		}

		var req referralgateway.TriggerRewardRequest
		if err := json.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(&req); err != nil {
			return false
		}

		return req.UserID == request.UserID && req.EventType == request.EventType &&
			req.EventData.OrderID == request.EventData.OrderID
	})
}

func TestReferralGateway_TriggerReward(t *testing.T) {
	cfg := referralgateway.Config{
		BaseURL: "https://referral.somonplay.test",
		Timeout: 30 * time.Second,
	}

	triggerURL := "https://referral.somonplay.test/api/referral/trigger-reward"
	headers := map[string]string{"Content-Type": "application/json"}

	request := referralgateway.TriggerRewardRequest{
		UserID:    "user123",
		EventType: referralgateway.EventTypeFirstPurchase,
		EventData: referralgateway.EventData{
			OrderID:       "order-123",
			TransactionID: "TX1",
			Amount:        100,
			CoinsReceived: 110,
		},
	}

	t.Run("successful trigger", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		rg := referralgateway.NewReferralGateway(cfg, mockClient)

		body := `{
			"success": true,
			"message": "rewards granted",
			"x_track_id": "",
			"result": {"rewards_granted": 1, "total_amount": 5}
		}`

		successResponse := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Post", context.Background(), triggerURL, matchRequestBody(request),
			headers).Return(successResponse, nil)

		response, err := rg.TriggerReward(context.Background(), request)

		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, 1, response.Result.RewardsGranted)
		mockClient.AssertExpectations(t)
	})

	t.Run("api key header attached when configured", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		keyedCfg := cfg
		keyedCfg.APIKey = "secret"
		rg := referralgateway.NewReferralGateway(keyedCfg, mockClient)

		keyedHeaders := map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer secret",
		}

		successResponse := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"success": true}`)),
		}

		mockClient.On("Post", context.Background(), triggerURL, matchRequestBody(request),
			keyedHeaders).Return(successResponse, nil)

		_, err := rg.TriggerReward(context.Background(), request)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("timeout error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		rg := referralgateway.NewReferralGateway(cfg, mockClient)

		mockClient.On("Post", context.Background(), triggerURL, matchRequestBody(request),
			headers).Return((*http.Response)(nil), context.DeadlineExceeded)

		response, err := rg.TriggerReward(context.Background(), request)

		assert.Error(t, err)
		assert.Equal(t, referralgateway.ErrTimeout, err)
		assert.Empty(t, response)
	})

	t.Run("user not found", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		rg := referralgateway.NewReferralGateway(cfg, mockClient)

		notFoundResponse := &http.Response{
			StatusCode: 404,
			Body:       io.NopCloser(strings.NewReader(`{"success": false}`)),
		}

		mockClient.On("Post", context.Background(), triggerURL, matchRequestBody(request),
			headers).Return(notFoundResponse, nil)

		response, err := rg.TriggerReward(context.Background(), request)

		assert.Error(t, err)
		assert.Equal(t, referralgateway.ErrUserNotFound, err)
		assert.Empty(t, response)
	})

	t.Run("server error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		rg := referralgateway.NewReferralGateway(cfg, mockClient)

		errorResponse := &http.Response{
			StatusCode: 500,
			Body:       io.NopCloser(strings.NewReader(`{"success": false}`)),
		}

		mockClient.On("Post", context.Background(), triggerURL, matchRequestBody(request),
			headers).Return(errorResponse, nil)

		response, err := rg.TriggerReward(context.Background(), request)

		assert.Error(t, err)
		assert.Equal(t, referralgateway.ErrServerError, err)
		assert.Empty(t, response)
	})

	t.Run("malformed success body", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		rg := referralgateway.NewReferralGateway(cfg, mockClient)

		badResponse := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`not json`)),
		}

		mockClient.On("Post", context.Background(), triggerURL, matchRequestBody(request),
			headers).Return(badResponse, nil)

		response, err := rg.TriggerReward(context.Background(), request)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decoding error")
		assert.Empty(t, response)
	})
}
