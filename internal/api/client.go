package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pantrypal/internal/common"
	"pantrypal/internal/logging"
)

// Client calls the backend's resource endpoints through Transport.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewClient builds a resource client whose every request passes through a
// Transport bound to the given token source. onAuthRejected is the
// session-invalidated hook; it runs before a 401-failed call returns.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, onAuthRejected func(ctx context.Context), log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &Transport{Tokens: tokens, OnAuthRejected: onAuthRejected},
		},
		log: log,
	}
}

// do issues a single request and decodes the JSON response into out (when
// out is non-nil). Transport-level failures are wrapped in
// common.ErrUnavailable; response statuses are mapped by checkStatus.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "status", resp.StatusCode)
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
