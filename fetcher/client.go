package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// API paths.
const (
	searchPath = "/tweets/search/all"
	lookupPath = "/tweets"
)

// defaultRateLimitDelay is used when a 429 arrives without a usable
// reset header.
const defaultRateLimitDelay = 5 * time.Second

// Client talks to the service for one acquisition run. Build it with
// New; the zero value is not usable.
type Client struct {
	cfg   Config
	httpc *http.Client
	log   *slog.Logger
	runID string
}

// ClientOption customizes a Client at construction.
type ClientOption func(*Client)

// WithHTTPClient injects the underlying HTTP client (tests, custom
// transports, timeouts). Panics on nil.
func WithHTTPClient(h *http.Client) ClientOption {
	if h == nil {
		panic("fetcher: WithHTTPClient(nil)")
	}
	return func(c *Client) {
		c.httpc = h
	}
}

// WithLogger injects the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) ClientOption {
	if l == nil {
		panic("fetcher: WithLogger(nil)")
	}
	return func(c *Client) {
		c.log = l
	}
}

// New builds a Client for one run: defaults are resolved, the config
// is validated, and a fresh run id is minted for log correlation.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:   cfg,
		httpc: http.DefaultClient,
		log:   slog.Default(),
		runID: uuid.NewString(),
	}
	for _, fn := range opts {
		fn(c)
	}
	c.log = c.log.With(slog.String("run_id", c.runID))

	return c, nil
}

// RunID reports the correlation id minted for this client.
func (c *Client) RunID() string { return c.runID }

// get performs one GET against path with query q, retrying through
// rate limits when configured. The caller owns the returned response.
func (c *Client) get(ctx context.Context, path string, q url.Values) (*apiResponse, error) {
	endpoint := c.cfg.BaseURL + path + "?" + q.Encode()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("fetcher: build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.BearerToken)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetcher: do request: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("fetcher: read response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			var decoded apiResponse
			if err := json.Unmarshal(body, &decoded); err != nil {
				return nil, fmt.Errorf("fetcher: decode response: %w", err)
			}

			return &decoded, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			if !c.cfg.WaitOnRateLimit {
				return nil, fmt.Errorf("fetcher: %s: %w", path, ErrRateLimited)
			}
			if err := c.waitForReset(ctx, resp.Header.Get("x-rate-limit-reset")); err != nil {
				return nil, err
			}
			// retry the same request

		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return nil, fmt.Errorf("fetcher: %s: status %d: %s: %w",
				path, resp.StatusCode, errorTitle(body), ErrAuth)

		default:
			return nil, fmt.Errorf("fetcher: %s: status %d: %s: %w",
				path, resp.StatusCode, errorTitle(body), ErrAPI)
		}
	}
}

// waitForReset sleeps until the announced reset instant (unix
// seconds), or a small default when the header is absent or mangled.
// Returns early with the context's error on cancellation.
func (c *Client) waitForReset(ctx context.Context, resetHeader string) error {
	delay := defaultRateLimitDelay
	if reset, err := strconv.ParseInt(resetHeader, 10, 64); err == nil {
		delay = time.Until(time.Unix(reset, 0))
		if delay < 0 {
			delay = 0
		}
	}
	c.log.Info("rate limited, waiting for reset", slog.Duration("delay", delay))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// errorTitle extracts a human-readable title from an error body, best
// effort.
func errorTitle(body []byte) string {
	var payload struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Title == "" {
		return "unrecognized error body"
	}
	if payload.Detail != "" {
		return payload.Title + ": " + payload.Detail
	}

	return payload.Title
}
