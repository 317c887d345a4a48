// Package probe provides the HTTP existence-probe client used by the URL
// validator. A probe answers one question: does anything respond at this
// URL? It never downloads content.
package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/modsmith/modmerge/pkg/constants"
)

// Client issues HEAD requests with a browser-like user agent.
type Client struct {
	http *http.Client
}

// New creates a new probe client. The timeout applies per request.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Exists reports whether the URL answers a HEAD request with a 2xx or 3xx
// status. Any transport error, timeout, or cancellation counts as absent.
func (c *Client) Exists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", constants.ProbeUserAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}
