package github

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	perr "statcard/internal/platform/errors"
)

const (
	maxBody      = 1 << 20
	maxErrorTail = 2048
)

// StatusError is a non 2xx answer from GitHub
type StatusError struct {
	Status int
	Body   string // first maxErrorTail bytes
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d %s", e.Status, http.StatusText(e.Status))
}

// HTTPStatus lets perr map the status to an ErrorCode
func (e *StatusError) HTTPStatus() int { return e.Status }

func newStatusError(resp *http.Response) *StatusError {
	tail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorTail))
	_ = resp.Body.Close()
	return &StatusError{Status: resp.StatusCode, Body: string(tail)}
}

// quota is what the rate limit headers say about the caller's budget
type quota struct {
	remaining  int
	reset      time.Time
	retryAfter time.Duration
}

func quotaFrom(h http.Header) quota {
	num := func(k string) int64 {
		n, _ := strconv.ParseInt(h.Get(k), 10, 64)
		return n
	}
	q := quota{
		remaining:  int(num("X-RateLimit-Remaining")),
		retryAfter: time.Duration(num("Retry-After")) * time.Second,
	}
	if sec := num("X-RateLimit-Reset"); sec > 0 {
		q.reset = time.Unix(sec, 0).UTC()
	}
	return q
}

// decode reads a bounded JSON body into out and closes it
func (c *Client) decode(resp *http.Response, path string, out any) error {
	return c.decodeWith(resp, path, func(dec *json.Decoder) error { return dec.Decode(out) })
}

// decodeWith hands fn a decoder over the bounded body and closes it afterwards
func (c *Client) decodeWith(resp *http.Response, path string, fn func(*json.Decoder) error) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Error().Err(err).Str("path", path).Msg("github close body failed")
		}
	}()
	if err := fn(json.NewDecoder(io.LimitReader(resp.Body, maxBody))); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "github decode %s", path)
	}
	return nil
}

// IsNotFound reports whether err is a GitHub 404
func IsNotFound(err error) bool {
	return perr.IsStatus(err, http.StatusNotFound) || perr.IsCode(err, perr.ErrorCodeNotFound)
}

// IsRateLimited reports whether err is a 429 or a 403 secondary rate limit
func IsRateLimited(err error) bool {
	return perr.IsStatus(err, http.StatusTooManyRequests) || perr.IsStatus(err, http.StatusForbidden)
}

// IsTransient reports whether a later identical call could succeed
func IsTransient(err error) bool { return perr.IsRetryable(err) }
