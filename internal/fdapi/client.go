// Package fdapi is a minimal client for the Financial Datasets REST API
// (api.financialdatasets.ai). It covers exactly what the tool layer needs:
// snapshot and list GETs plus the financials search POST. No retries, no
// caching; every call hits the live API once.
package fdapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BaseURL is the production API host.
const BaseURL = "https://api.financialdatasets.ai"

// AuthMode selects how the API key is attached to an outbound request.
type AuthMode int

const (
	// AuthQuery sends the key as the api_key query parameter (the default).
	AuthQuery AuthMode = iota
	// AuthHeader sends the key as the X-API-KEY header. The earnings and
	// search endpoints only accept this form.
	AuthHeader
)

// APIError is a non-2xx response. The message carries the status code and
// the raw body text so upstream diagnostics surface verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client issues requests against one API host with one key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client. An empty baseURL selects the production host;
// a non-positive timeout defaults to 30s.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get issues a GET against endpoint, sending every entry of params as a
// query parameter, and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, auth AuthMode, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	q := req.URL.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	if auth == AuthQuery {
		q.Set("api_key", c.apiKey)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	if auth == AuthHeader {
		req.Header.Set("X-API-KEY", c.apiKey)
	}
	return c.do(req, out)
}

// PostJSON issues a POST with a JSON-encoded body and header auth, decoding
// the JSON response into out. Only the financials search endpoint uses this.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
