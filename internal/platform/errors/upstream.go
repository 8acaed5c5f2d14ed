package errors

// Upstream helpers for mapping HTTP API failures to project ErrorCode and retry semantics

import (
	"context"
	stderrs "errors"
	"fmt"
	"net"
	"net/http"
)

// StatusCoder is implemented by errors that carry an upstream HTTP status
type StatusCoder interface {
	HTTPStatus() int
}

// ExtractStatus returns the upstream status of the first StatusCoder in err's chain
func ExtractStatus(err error) (int, bool) {
	var sc StatusCoder
	if stderrs.As(err, &sc) {
		return sc.HTTPStatus(), true
	}
	return 0, false
}

// IsStatus reports whether err carries the given upstream status
func IsStatus(err error, status int) bool {
	s, ok := ExtractStatus(err)
	return ok && s == status
}

// UpstreamErrorCode maps an upstream HTTP status to an ErrorCode
// 403 is treated as rate limiting since that is how GitHub reports secondary limits
func UpstreamErrorCode(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound, status == http.StatusGone:
		return ErrorCodeNotFound
	case status == http.StatusUnauthorized:
		return ErrorCodeUnauthorized
	case status == http.StatusForbidden, status == http.StatusTooManyRequests:
		return ErrorCodeTooManyRequests
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrorCodeInvalidArgument
	default:
		return ErrorCodeUnavailable
	}
}

// FromUpstream wraps an upstream error with a mapped ErrorCode and message
// errors without a status are treated as unavailable dependencies
// If err is nil, returns nil
func FromUpstream(err error, msg string) error {
	if err == nil {
		return nil
	}
	if s, ok := ExtractStatus(err); ok {
		return Wrap(err, UpstreamErrorCode(s), msg)
	}
	return Wrap(err, ErrorCodeUnavailable, msg)
}

// FromUpstreamf is the formatted variant of FromUpstream
func FromUpstreamf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return FromUpstream(err, fmt.Sprintf(format, a...))
}

// IsRetryable reports whether an upstream error represents a transient condition
// callers here never retry; this only classifies failures for logs
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// local cancellations are the caller's decision
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}

	if s, ok := ExtractStatus(err); ok {
		switch s {
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	var ne net.Error
	return stderrs.As(err, &ne) && ne.Timeout()
}
