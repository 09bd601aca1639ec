// Package api wraps all outbound calls to the TrackHabit backend. Every
// request is a single attempt: no retries, no backoff. Failures are
// normalized into *Error values carrying the server-provided message when
// one exists.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// Error is the single failure kind produced for non-success HTTP statuses.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client

	// online mirrors the reachability of the backend: any failed request
	// flips it false, a successful health probe flips it true.
	online atomic.Bool
}

// New creates a client for the backend rooted at baseURL. A zero timeout
// disables the request deadline.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Online reports the result of the most recent request or health probe.
func (c *Client) Online() bool {
	return c.online.Load()
}

// do performs one request against path. When out is non-nil and the response
// declares a JSON content type, the body is decoded into out; otherwise the
// raw body text is returned.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (string, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.online.Store(false)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.online.Store(false)
		return "", c.errorFromResponse(resp)
	}

	if isJSON(resp.Header.Get("Content-Type")) {
		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				c.online.Store(false)
				return "", fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return "", nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.online.Store(false)
		return "", err
	}
	return string(raw), nil
}

// errorFromResponse extracts the server's {"message": ...} when the error
// body carries one, falling back to a generic HTTP status message.
func (c *Client) errorFromResponse(resp *http.Response) *Error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}

	return apiErr
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// Health probes the backend with a lightweight listing request and records
// reachability.
func (c *Client) Health(ctx context.Context) error {
	if _, err := c.do(ctx, http.MethodGet, "/users", nil, nil); err != nil {
		c.online.Store(false)
		return err
	}
	c.online.Store(true)
	return nil
}
