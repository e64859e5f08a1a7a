// Package pota fetches the live activator spot list from the upstream
// POTA API. One call returns the full current snapshot as a JSON array.
package pota

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/potalake/potalake/internal/fault"
	"github.com/potalake/potalake/internal/spots"
)

// DefaultURL is the public activator spot endpoint.
const DefaultURL = "https://api.pota.app/spot/activator"

// defaultUserAgent identifies this collector to the upstream API. Kept
// stable so operators can recognize the traffic.
const defaultUserAgent = "potalake/1.0"

// Client polls the upstream spot endpoint.
type Client struct {
	url       string
	timeout   time.Duration
	userAgent string
	client    *http.Client
}

// NewClient creates a client for the given endpoint URL. An empty URL
// selects DefaultURL.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:       url,
		timeout:   timeout,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// URL returns the configured endpoint.
func (c *Client) URL() string { return c.url }

// SetUserAgent replaces the User-Agent header sent upstream. Empty
// values are ignored.
func (c *Client) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// Fetch retrieves the current spot snapshot. Transport failures and
// non-200 statuses surface as FETCH_ERROR; a body that does not decode
// as a spot array surfaces as PARSE_ERROR.
func (c *Client) Fetch(ctx context.Context) ([]spots.UpstreamSpot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fault.New(fault.FetchError, "create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fault.New(fault.FetchError, "upstream request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fault.New(fault.FetchError, "read response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fault.Newf(fault.FetchError, "upstream status %d: %s", resp.StatusCode, string(body))
	}

	var snapshot []spots.UpstreamSpot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fault.New(fault.ParseError, "decode spot array", err)
	}
	return snapshot, nil
}
