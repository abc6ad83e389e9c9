// Package netx holds the small HTTP plumbing shared by the backend clients.
package netx

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/profiledash/internal/logging"
)

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 16 << 20

// StatusError is a completed exchange that ended with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d %s", e.Code, e.StatusText())
}

// StatusText is the reason phrase for Code.
func (e *StatusError) StatusText() string {
	return http.StatusText(e.Code)
}

// NewHTTPClient returns a client bounded by timeout. Zero means no limit.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Do sends req and returns the body of a 2xx response. A non-2xx response
// yields *StatusError; transport and read failures are returned as is.
func Do(c *http.Client, log logging.Logger, req *http.Request) ([]byte, error) {
	if c == nil {
		c = http.DefaultClient
	}
	ctx := req.Context()
	start := time.Now()

	resp, err := c.Do(req)
	if err != nil {
		log.Debug(ctx, "http request failed", "method", req.Method, "url", req.URL.Redacted(), "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	log.Debug(ctx, "http request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
