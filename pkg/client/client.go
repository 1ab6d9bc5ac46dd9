package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every outbound call. A slow console cannot hang a
// caller for longer than this per request.
const DefaultTimeout = 30 * time.Second

// apiPrefix is the versioned path prepended to every REST endpoint.
const apiPrefix = "/web/api/v2.1"

// Client is a SentinelOne management API client.
type Client struct {
	baseURL    string
	apiToken   string
	timeout    time.Duration
	httpClient *http.Client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a client for the management console at baseURL, authenticating
// with apiToken. A trailing slash on baseURL is stripped.
func New(baseURL, apiToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiToken:   apiToken,
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request performs a single authenticated call and decodes the JSON response
// into out (skipped when out is nil). body, when non-nil, is JSON-encoded.
func (c *Client) request(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + apiPrefix + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "ApiToken "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		elapsed := time.Since(start)
		if errors.Is(err, context.DeadlineExceeded) {
			slog.Debug("HTTP request timed out",
				slog.String("method", method),
				slog.String("endpoint", endpoint),
				slog.Int64("duration_ms", elapsed.Milliseconds()),
			)
			return &TimeoutError{Elapsed: elapsed}
		}
		slog.Debug("HTTP request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.String("error", c.redact(err.Error())),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
		)
		return fmt.Errorf("executing request: %s", c.redact(err.Error()))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		slog.Debug("HTTP request returned error",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       c.redact(string(raw)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	slog.Debug("HTTP request completed",
		slog.String("method", method),
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.request(ctx, http.MethodGet, endpoint, query, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	return c.request(ctx, http.MethodPost, endpoint, nil, body, out)
}

// redact replaces the API token wherever it appears in text destined for
// callers, so a misbehaving remote cannot echo the credential back through
// an error message.
func (c *Client) redact(s string) string {
	if c.apiToken == "" {
		return s
	}
	return strings.ReplaceAll(s, c.apiToken, RedactedMarker)
}
