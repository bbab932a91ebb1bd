// Package iofetch provides the HTTP client used to fetch raw files.
//
// There are no retries: a failed request is returned to the caller, which
// aborts the download run.
package iofetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Common errors.
var (
	ErrNotFound     = errors.New("http: resource not found")
	ErrForbidden    = errors.New("http: access forbidden")
	ErrUnauthorized = errors.New("http: unauthorized")
	ErrServerError  = errors.New("http: server error")
)

// Options configures the HTTP client.
type Options struct {
	// Timeout of the whole request including reading the body.
	// Zero means no timeout.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string
}

// Response is a successful GET response.
type Response struct {
	// Body must be closed by the caller.
	Body io.ReadCloser

	// Size is the content length, -1 if unknown.
	Size int64

	// LastModified is zero when the server did not send the header.
	LastModified time.Time
}

// Client fetches remote files.
type Client struct {
	client *http.Client
	opts   Options
}

// NewClient creates a new HTTP client with the given options.
func NewClient(opts Options) *Client {
	return &Client{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
	}
}

// Get performs a GET request. Non-2xx responses are returned as errors.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	if err := checkStatusCode(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}

	res := &Response{
		Body: resp.Body,
		Size: resp.ContentLength,
	}
	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		if t, err := http.ParseTime(lm); err == nil {
			res.LastModified = t.UTC()
		}
	}
	return res, nil
}

// checkStatusCode returns an appropriate error for non-success status codes.
func checkStatusCode(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code >= 500:
		return fmt.Errorf("%w: %d", ErrServerError, code)
	default:
		return fmt.Errorf("unexpected status code: %d", code)
	}
}
