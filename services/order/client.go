package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/models"
)

// HTTPOrdersClient implements OrdersClient against the orders API.
type HTTPOrdersClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewHTTPOrdersClient(baseURL, apiKey string) *HTTPOrdersClient {
	return &HTTPOrdersClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateOrder posts the order payload and decodes the result envelope.
// Transport failures and non-2xx responses surface as errors; a decoded
// envelope with ok=false is returned as-is for the caller to interpret.
func (c *HTTPOrdersClient) CreateOrder(ctx context.Context, payload models.OrderPayload) (*models.OrderResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create-order request failed: %w", err)
	}
	defer resp.Body.Close()

	var result models.OrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode create-order response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Error != "" {
			return nil, fmt.Errorf("orders API returned %d: %s", resp.StatusCode, result.Error)
		}
		return nil, fmt.Errorf("orders API returned status %d", resp.StatusCode)
	}
	return &result, nil
}
