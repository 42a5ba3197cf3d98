package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// retryableStatus reports whether an HTTP status warrants another attempt.
// The asset origin fronts S3 and occasionally returns gateway errors.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// Client is an HTTP client with a visibly finite retry budget. Retries apply
// to connection-level failures and retryable status codes; anything else is
// terminal on the first attempt.
type Client struct {
	http *http.Client
	cfg  Config
	log  *zap.Logger
}

// NewClient creates a retrying client based on the configuration.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.BackoffSeconds < 0 {
		cfg.BackoffSeconds = 1
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		http: &http.Client{Transport: transport, Timeout: timeoutDuration},
		cfg:  cfg,
		log:  log,
	}
}

// Fetch retrieves url, retrying transient failures with exponential backoff
// until the attempt budget is exhausted. It returns the response body on
// success and the last error otherwise.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(c.cfg.BackoffSeconds) * time.Second << (attempt - 2)
			c.log.Warn("retrying fetch",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(lastErr),
			)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := c.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var retryErr *retryError
		if !errors.As(err, &retryErr) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("fetch failed after %d attempts: %w", c.cfg.MaxAttempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Connection-level failures (broken pipe, reset, timeout) are
		// considered transient.
		return nil, &retryError{err: err}
	}
	defer resp.Body.Close()

	if retryableStatus(resp.StatusCode) {
		return nil, &retryError{err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &retryError{err: err}
	}
	return body, nil
}

// retryError marks an error as transient.
type retryError struct {
	err error
}

func (e *retryError) Error() string { return e.err.Error() }
func (e *retryError) Unwrap() error { return e.err }
