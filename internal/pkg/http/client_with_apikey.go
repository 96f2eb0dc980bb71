package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"time"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader is the header name for API key authentication
	APIKeyHeader = "X-API-Key"
)

// APIKeyClient is an HTTP client with API key authentication
type APIKeyClient struct {
	client  *nethttp.Client
	apiKey  string
	baseURL string
}

// NewAPIKeyClient creates a new HTTP client with API key authentication
func NewAPIKeyClient(apiKey, baseURL string) *APIKeyClient {
	return &APIKeyClient{
		client: &nethttp.Client{
			Timeout: DefaultTimeout,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// SetTimeout sets the HTTP client timeout
func (c *APIKeyClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// Post performs a POST request with API key authentication
func (c *APIKeyClient) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// PostJSON performs a POST request with a JSON body and decodes the response
func (c *APIKeyClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func (c *APIKeyClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	return c.client.Do(req)
}
