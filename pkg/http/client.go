// Package http provides a small fluent client for calling external JSON APIs.
//
// Example:
//
//	var out Result
//	err := http.New().
//	    WithTimeout(20 * time.Second).
//	    WithHeader("Content-Type", "application/json").
//	    PostJSON(ctx, url, payload, &out)
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps net/http with JSON helpers and default headers.
type Client struct {
	hc      *http.Client
	headers map[string]string
}

// New returns a Client with a 30s timeout.
func New() *Client {
	return &Client{
		hc:      &http.Client{Timeout: 30 * time.Second},
		headers: make(map[string]string),
	}
}

// WithTimeout overrides the request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.hc.Timeout = d
	return c
}

// WithHeader sets a default header applied to every request.
func (c *Client) WithHeader(key, value string) *Client {
	c.headers[key] = value
	return c
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http: unexpected status %d: %s", e.Code, e.Body)
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}
	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// GetJSON performs a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	return c.do(ctx, http.MethodGet, url, nil, out)
}

// PostJSON encodes payload as JSON, POSTs it and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, url string, payload, out interface{}) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return err
	}
	if _, ok := c.headers["Content-Type"]; !ok {
		c.headers["Content-Type"] = "application/json"
	}
	return c.do(ctx, http.MethodPost, url, buf, out)
}
