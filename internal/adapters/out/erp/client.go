// Package erp provides an HTTP client for the external ERP's stock endpoint.
// The ERP is the system of record for stock quantities; the local ledger is
// periodically reconciled against the snapshots this client fetches.
package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client fetches stock snapshots from the ERP over HTTP with basic auth.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates an ERP stock feed client.
// baseURL is the ERP root, e.g. "https://erp.internal:8443"; the client
// requests GET {baseURL}/api/v1/stock.
func NewClient(baseURL, username, password string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}

	return &Client{
		baseURL:    baseURL,
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// stockLevelResponse mirrors one element of the ERP stock payload.
type stockLevelResponse struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

// Snapshot fetches the ERP's current view of all stock levels.
func (c *Client) Snapshot(ctx context.Context) ([]ports.StockLevel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/stock", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stock snapshot: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch stock snapshot: unexpected status %d", resp.StatusCode)
	}

	var payload []stockLevelResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode stock snapshot: %w", err)
	}

	levels := make([]ports.StockLevel, 0, len(payload))
	for _, item := range payload {
		levels = append(levels, ports.StockLevel{SKU: item.SKU, Qty: item.Qty})
	}

	return levels, nil
}
