// Package billing talks to the external payment provider. The provider is a
// black box: this client opens checkout sessions and returns the URL the
// mobile client renders in its payment sheet. No payment state lives here.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/staffhub/agency-api/internal/core/ports"
)

const defaultClientTimeout = 10 * time.Second

// CheckoutClient POSTs checkout-session requests to the provider endpoint.
type CheckoutClient struct {
	client *http.Client
	url    string
	apiKey string
}

// Option configures CheckoutClient.
type Option func(*CheckoutClient)

// WithHTTPClient overrides the HTTP client (default: 10s timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(cc *CheckoutClient) {
		cc.client = c
	}
}

func NewCheckoutClient(url, apiKey string, opts ...Option) *CheckoutClient {
	cc := &CheckoutClient{
		client: &http.Client{Timeout: defaultClientTimeout},
		url:    url,
		apiKey: apiKey,
	}
	for _, opt := range opts {
		opt(cc)
	}
	return cc
}

// CreateCheckoutSession implements ports.CheckoutClient. A failed call
// surfaces immediately; there is no retry.
func (c *CheckoutClient) CreateCheckoutSession(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutSession, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("checkout request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("checkout provider returned status %d", resp.StatusCode)
	}

	var sess ports.CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, fmt.Errorf("decode checkout response: %w", err)
	}
	return &sess, nil
}

var _ ports.CheckoutClient = (*CheckoutClient)(nil)
