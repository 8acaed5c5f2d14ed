// Package middleware holds the HTTP middleware the API stacks in front of every route
// chi's middleware is re-exported as plain func(http.Handler) http.Handler so callers never import chi
package middleware

import (
	"fmt"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID propagates X-Request-ID or mints one, and stores it on the context
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP trusts X-Forwarded-For / X-Real-IP for RemoteAddr
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// StripSlashes routes /stats/ as /stats
func StripSlashes() func(http.Handler) http.Handler { return chimw.StripSlashes }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// Compress gzips and deflates responses; level is a compress/flate level
func Compress(level int) func(http.Handler) http.Handler {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// Throttle bounds in flight requests; extra requests wait up to wait in a backlog, then get 429
// limit <= 0 disables it
func Throttle(limit, backlog int, wait time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return chimw.ThrottleBacklog(limit, backlog, wait)
}

// CacheControl lets clients and image proxies keep a response for maxAge
// maxAge <= 0 marks responses as uncacheable instead
func CacheControl(maxAge time.Duration) func(http.Handler) http.Handler {
	if maxAge <= 0 {
		return chimw.NoCache
	}
	return chimw.SetHeader("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
}
