// Package http acquires legacy site content over the GitHub contents
// API, for runs against the repository that preserves the original
// site instead of a local checkout.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ilsedelangerecords/archivist"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 30 * time.Second

// DefaultRequestsPerSecond keeps well under GitHub's secondary rate
// limits for unauthenticated clients.
const DefaultRequestsPerSecond = 5

// DefaultRetryDelays returns the backoff delays for request retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Client is a rate-limited, retrying GitHub API client.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	token       string
	retryDelays []time.Duration
	apiBase     string
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets a bearer token for authenticated requests, lifting
// GitHub's anonymous rate limits.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRequestsPerSecond sets the request rate limit.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithRetryDelays sets the backoff delays between retries. Useful for
// testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(c *Client) { c.retryDelays = delays }
}

// WithBaseURL overrides the API base URL. Useful for testing against
// a local server.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.apiBase = base }
}

// NewClient creates a Client with default limits.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		limiter:     rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		retryDelays: DefaultRetryDelays(),
		apiBase:     "https://api.github.com",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs one rate-limited GET with retries. 404 fails
// immediately with ENOTFOUND; other failures retry with backoff.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	maxAttempts := len(c.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelays[attempt-1]):
			}
		}

		body, err := c.fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		if archivist.ErrorCode(err) == archivist.ENOTFOUND {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "archivist")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return io.ReadAll(resp.Body)
	case resp.StatusCode == http.StatusNotFound:
		return nil, archivist.Errorf(archivist.ENOTFOUND, "not found: %s", url)
	default:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
}
