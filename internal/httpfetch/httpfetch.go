// Package httpfetch implements clipdata.Fetcher over HTTP with bounded retries.
package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
	"golang.org/x/net/context/ctxhttp"
)

// StatusError is returned for any non-200 response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: received status code %d", e.URL, e.StatusCode)
}

// Retryable reports whether the status is worth another attempt.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Options configures a Client. Zero values pick the defaults.
type Options struct {
	HTTPClient *http.Client
	UserAgent  string
	Retries    int
	RetryDelay time.Duration
	Timeout    time.Duration
	Logger     *zap.Logger
}

// Client fetches whole response bodies, one request at a time.
type Client struct {
	http      *http.Client
	userAgent string
	retries   int
	delay     time.Duration
	log       *zap.Logger
}

func New(opts Options) *Client {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.Timeout > 0 && opts.HTTPClient.Timeout == 0 {
		client := *opts.HTTPClient
		client.Timeout = opts.Timeout
		opts.HTTPClient = &client
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 500 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Client{
		http:      opts.HTTPClient,
		userAgent: opts.UserAgent,
		retries:   opts.Retries,
		delay:     opts.RetryDelay,
		log:       opts.Logger,
	}
}

// Fetch GETs url and returns the body. Transport errors, 429 and 5xx responses are retried up to
// the configured number of times; any other non-200 status fails immediately.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	var (
		body      []byte
		permanent error
		attempt   int
	)
	op := func() error {
		attempt++
		b, err := c.get(ctx, url)
		if err == nil {
			body = b
			return nil
		}
		var se *StatusError
		if ctx.Err() != nil || (errors.As(err, &se) && !se.Retryable()) {
			permanent = err
			return nil
		}
		c.log.Debug("fetch attempt failed", zap.String("url", url), zap.Int("attempt", attempt), zap.Error(err))
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(c.delay), uint64(c.retries)), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	if permanent != nil {
		return nil, permanent
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	resp, err := ctxhttp.Do(ctx, c.http, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}
