// Package httpx is a small JSON-over-HTTP fetch helper shared by the typed
// API client and the LLM client. Every call is a single attempt: no retries,
// no backoff. Cancellation and deadlines come from the caller's context.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError is returned for any non-2xx response. The message embeds the
// status code and whatever the server sent as a body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Client wraps an http.Client with JSON defaults.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithHeader adds a default header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// New creates a client. Content-Type defaults to application/json and can be
// overridden per instance via WithHeader.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchJSON issues one request and decodes the JSON response into out.
// A nil body sends no payload; a nil out discards the response body.
// Non-2xx responses produce a *StatusError carrying the status code and the
// response body text (just the code if the body cannot be read).
func (c *Client) FetchJSON(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		if raw, readErr := io.ReadAll(resp.Body); readErr == nil {
			statusErr.Body = string(raw)
		}
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Get is a convenience wrapper around FetchJSON with GET and no body.
func (c *Client) Get(ctx context.Context, url string, out interface{}) error {
	return c.FetchJSON(ctx, http.MethodGet, url, nil, out)
}

// Post is a convenience wrapper around FetchJSON with POST.
func (c *Client) Post(ctx context.Context, url string, body, out interface{}) error {
	return c.FetchJSON(ctx, http.MethodPost, url, body, out)
}
