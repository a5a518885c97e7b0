package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MonitorClient defines the interface for talking to the monitoring server.
type MonitorClient interface {
	GetLogs(ctx context.Context) (*LogBatch, error)
	GetActions(ctx context.Context) (*ActionList, error)
	IsImporting(ctx context.Context, deployment Deployment) (*ImportState, error)
	Deploy(ctx context.Context, deployment Deployment, fresh bool) error
	DeleteActions(ctx context.Context, deployment Deployment) error
	Import(ctx context.Context, calls string) (*ImportResult, error)
	ClearLogs(ctx context.Context) error
	ClearStore(ctx context.Context) error
	BaseURL() string
}

// ClientConfig holds configuration for DefaultClient.
type ClientConfig struct {
	BaseURL string
	// RequestTimeout bounds every request on top of the caller's context.
	// Zero leaves requests bounded by the context only.
	RequestTimeout time.Duration
}

// DefaultClient implements MonitorClient using the standard net/http package.
type DefaultClient struct {
	http   *http.Client
	config ClientConfig
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// NewDefaultClient constructs a DefaultClient from the given config.
// Returns an error if BaseURL is empty.
func NewDefaultClient(cfg ClientConfig) (*DefaultClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("BaseURL is required")
	}
	if cfg.RequestTimeout < 0 {
		cfg.RequestTimeout = 0
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	return &DefaultClient{
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		config: cfg,
	}, nil
}

// BaseURL returns the configured base URL of the monitoring server.
func (c *DefaultClient) BaseURL() string {
	return c.config.BaseURL
}

// doGet performs a GET request to the given path (relative to BaseURL) with
// params encoded in the query string. The server expects a JSON content type
// to be declared even though no body is sent.
// Returns the response body bytes or an error on non-2xx status.
func (c *DefaultClient) doGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := strings.TrimRight(c.config.BaseURL, "/") + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	const maxResponseBytes = 8 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(body, 200)}
	}

	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
