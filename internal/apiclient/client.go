// Package apiclient is the typed HTTP client for the hiring API. It speaks
// the same wire contract whether the backend is a real server or the
// in-process simulator mounted through HandlerTransport.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// APIError carries the status code and the server's error message from a
// non-2xx response body of the form {"error": "..."}.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err is an APIError with status 400.
func IsConflict(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusBadRequest
}

type Client struct {
	hc   *http.Client
	base string
}

func New(baseURL string) *Client {
	return &Client{
		hc:   &http.Client{Timeout: 30 * time.Second},
		base: baseURL,
	}
}

// NewInProcess returns a client whose requests are dispatched straight into
// the handler without opening a socket.
func NewInProcess(h http.Handler) *Client {
	return NewWithTransport(NewHandlerTransport(h))
}

// NewWithTransport returns an in-process client over a caller-built
// transport, for callers that need the Before hook.
func NewWithTransport(t *HandlerTransport) *Client {
	return &Client{
		hc:   &http.Client{Transport: t},
		base: "http://talentflow.local",
	}
}

// do performs one request. A non-nil body is JSON-encoded; a non-nil out is
// decoded from a 2xx response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			message = payload.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
