package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to a running link-refresh API server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. The client has no overall timeout:
// a run holds the response open for about one second per link, so callers
// bound requests with their context instead.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// buildRequest creates an HTTP request with proper headers
func (c *Client) buildRequest(ctx context.Context, method, path string) (*http.Request, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	return req, nil
}

// doRequest performs an HTTP request and returns the response body
func (c *Client) doRequest(req *http.Request) (string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorMsg := string(body)
		if errorMsg == "" {
			errorMsg = resp.Status
		}
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, errorMsg)
	}

	return string(body), nil
}

// RunScript triggers a refresh pass on the server and returns its log
func (c *Client) RunScript(ctx context.Context) (string, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, "/run-script")
	if err != nil {
		return "", err
	}
	return c.doRequest(req)
}
