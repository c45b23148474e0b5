package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/renderdebug/agent/internal/config"
)

// ErrNotConfigured is returned when the Render API token or service id
// is missing from the process configuration.
var ErrNotConfigured = errors.New("RENDER_API_TOKEN and RENDER_SERVICE_ID must be set")

// UpstreamError carries a non-success response from the Render API
// through to the caller unchanged.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("render API returned %d: %s", e.StatusCode, e.Body)
}

// Client fetches build logs from the Render API.
type Client struct {
	cfg    config.Config
	client *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchBuildLogs performs a single authenticated GET against the
// service's log endpoint and returns the raw body text. No retries;
// the first failure is surfaced to the caller.
func (c *Client) FetchBuildLogs(ctx context.Context) (string, error) {
	if !c.cfg.Configured() {
		return "", ErrNotConfigured
	}

	url := fmt.Sprintf("%s/v1/services/%s/logs", c.cfg.BaseURL, c.cfg.ServiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach render API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read render response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return string(body), nil
}
