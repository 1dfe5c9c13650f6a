// Package webhook provides an eventsink.Sink that POSTs events as JSON to a
// configured URL.
package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moderation/pkg/eventsink"
	"moderation/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// IdempotencyKeyHeader carries Event.ID so the consumer can drop redeliveries.
const IdempotencyKeyHeader = "Idempotency-Key"

// Client delivers events to a webhook endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
	token      string
}

// ParseRateLimit reads the X-RateLimit-* headers of a response. Missing headers
// yield a zero status; a malformed reset value is an error.
func ParseRateLimit(h http.Header) (eventsink.RateLimitStatus, error) {
	atoi := func(s string) int {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}

		return 0
	}

	resetStr := h.Get("X-RateLimit-Reset")
	if resetStr == "" {
		return eventsink.RateLimitStatus{}, nil
	}
	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		return eventsink.RateLimitStatus{}, errors.Wrap(err, "parse reset at")
	}

	return eventsink.RateLimitStatus{
		Limit:     atoi(h.Get("X-RateLimit-Limit")),
		Remaining: atoi(h.Get("X-RateLimit-Remaining")),
		ResetAt:   resetAt,
	}, nil
}

// Deliver POSTs the event. A 409 response means the consumer already has the
// event and counts as delivered.
func (c *Client) Deliver(ctx context.Context, event eventsink.Event) (eventsink.RateLimitStatus, error) {
	var enc jx.Encoder
	event.Encode(&enc)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(enc.Bytes()))
	if err != nil {
		return eventsink.RateLimitStatus{}, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(IdempotencyKeyHeader, event.ID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return eventsink.RateLimitStatus{}, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return rl, errors.Wrap(err, "parse rate limit")
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return rl, errors.Wrap(err, "read response body")
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusConflict:
		return rl, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return rl, errors.Errorf("deliver event %s: status %d: %s",
			event.ID, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return rl, nil
}

var _ eventsink.Sink = (*Client)(nil)

// New constructs a Client posting to url. An empty token disables the
// Authorization header.
func New(httpClient *http.Client, url, token string) *Client {
	return &Client{
		httpClient: httpClient,
		url:        url,
		token:      token,
	}
}
