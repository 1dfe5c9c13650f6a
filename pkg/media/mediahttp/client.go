// Package mediahttp provides a media.Resolver backed by the asset store's HTTP API.
package mediahttp

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"moderation/pkg/media"
	"moderation/pkg/serrors"

	"github.com/go-faster/errors"
)

// ChecksumHeader carries the hex SHA-256 of the asset in HEAD responses.
const ChecksumHeader = "X-Checksum-Sha256"

// Client resolves assets with HEAD {baseURL}/assets/{id}. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Resolve issues a HEAD request for the asset. A 404 means the asset does not exist.
func (c *Client) Resolve(ctx context.Context, assetID string) (*media.Asset, error) {
	req, err := http.NewRequestWithContext(ctx,
		http.MethodHead,
		c.baseURL+"/assets/"+url.PathEscape(assetID),
		nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "media store rate limited")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("resolve asset %q: unexpected status %d", assetID, resp.StatusCode)
	}

	checksum := strings.ToLower(strings.TrimSpace(resp.Header.Get(ChecksumHeader)))
	if checksum == "" {
		return nil, errors.Errorf("resolve asset %q: missing %s header", assetID, ChecksumHeader)
	}

	return &media.Asset{ID: assetID, Checksum: checksum}, nil
}

var _ media.Resolver = (*Client)(nil)

// New constructs a Client for the asset store at baseURL. An empty token disables
// the Authorization header.
func New(httpClient *http.Client, baseURL, token string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}
