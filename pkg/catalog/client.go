package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config represents the configuration for the catalog client
type Config struct {
	// EndpointURL is the catalog endpoint serving the product array
	EndpointURL string

	// Timeout bounds a single fetch, zero means 10 seconds
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return ErrInvalidConfig
	}
	return nil
}

// Client fetches raw product records from the remote catalog endpoint.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new catalog client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// FetchProducts retrieves the raw product records. It reports transport
// failures, non-2xx statuses and malformed bodies as errors; recovery
// (the fallback catalog) is the caller's policy.
func (c *Client) FetchProducts(ctx context.Context) ([]ProductRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.EndpointURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	var records []ProductRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	return records, nil
}
