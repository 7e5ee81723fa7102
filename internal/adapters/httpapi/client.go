// Package httpapi is the JSON-over-HTTP client shared by the ledger and LLM adapters.
//
// Reads that come back 503 are retried with exponential backoff. Everything else,
// writes included, is attempted exactly once; callers own write idempotency.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/smart_pocket/internal/metrics"
	"github.com/SscSPs/smart_pocket/internal/middleware"
)

// Defaults applied by NewClient when the config leaves a field zero.
const (
	DefaultTimeout        = 60 * time.Second
	DefaultRetryBaseDelay = 500 * time.Millisecond

	logBodyLimit = 2000
)

// Config configures a Client.
type Config struct {
	// ServiceName labels metrics and logs, e.g. "ledger" or "openai".
	ServiceName string
	BaseURL     string
	// Headers are sent with every request; per-request headers override them.
	Headers        map[string]string
	Timeout        time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// Request describes a single call relative to the configured base URL.
type Request struct {
	Method  string
	Path    string
	Query   map[string]string
	Body    any
	Timeout time.Duration
	Headers map[string]string
	// Idempotent marks a non-GET request as safe to repeat, so it is retried on 503 like a read.
	Idempotent bool
}

// Response is the raw outcome of the final attempt.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client issues JSON requests with uniform retry and header handling.
type Client struct {
	cfg        Config
	httpClient *http.Client
	sleep      func(ctx context.Context, d time.Duration) error
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSleeper replaces the backoff wait, mainly for tests.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) { c.sleep = sleep }
}

// NewClient creates a Client.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "upstream"
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		sleep:      sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// JoinURL joins base and path with exactly one slash between them.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// BuildURL resolves path and query against the configured base URL.
func (c *Client) BuildURL(path string, query map[string]string) string {
	endpoint := JoinURL(c.cfg.BaseURL, path)
	if len(query) == 0 {
		return endpoint
	}
	values := url.Values{}
	for k, v := range query {
		values.Set(k, v)
	}
	return endpoint + "?" + values.Encode()
}

// Send performs the request, retrying GET, HEAD and Idempotent requests on 503 up to MaxRetries times
// with a delay of RetryBaseDelay * 2^attempt. The final response is returned whatever its status.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("service", c.cfg.ServiceName))

	var payload []byte
	if req.Body != nil {
		var err error
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	retryable := req.Idempotent || method == http.MethodGet || method == http.MethodHead

	for attempt := 0; ; attempt++ {
		resp, err := c.sendOnce(ctx, method, req, payload)
		if err != nil {
			return nil, err
		}

		logger.Debug("Upstream response",
			slog.String("path", req.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(resp.Body)),
		)

		if resp.StatusCode != http.StatusServiceUnavailable || !retryable || attempt >= c.cfg.MaxRetries {
			metrics.UpstreamRequests.WithLabelValues(c.cfg.ServiceName, strconv.Itoa(resp.StatusCode)).Inc()
			return resp, nil
		}

		delay := c.cfg.RetryBaseDelay * time.Duration(1<<attempt)
		logger.Warn("Upstream unavailable, retrying",
			slog.String("path", req.Path),
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
		)
		metrics.UpstreamRetries.WithLabelValues(c.cfg.ServiceName).Inc()
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

func (c *Client) sendOnce(ctx context.Context, method string, req Request, payload []byte) (*Response, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.cfg.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.BuildURL(req.Path, req.Query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.cfg.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make request to %s: %w", c.cfg.ServiceName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", c.cfg.ServiceName, err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(body []byte) string {
	if len(body) == 0 {
		return "Empty Body"
	}
	if len(body) > logBodyLimit {
		return string(body[:logBodyLimit]) + "..."
	}
	return string(body)
}
