package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"statcard/internal/platform/logger"
	pnet "statcard/internal/platform/net"
)

// AccessLogOptions configures AccessLog
type AccessLogOptions struct {
	// Slow raises the line to warn at or above this duration; 0 disables it
	Slow time.Duration
}

// AccessLog writes one zerolog line per request through the request scoped logger
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log := logger.C(r.Context())
			evt := log.Info()
			switch {
			case status >= http.StatusInternalServerError:
				evt = log.Error()
			case opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}

// LogContext copies the chi request id into the logger context so logger.C picks it up
// install after RequestID
func LogContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := pnet.RequestID(r.Context()); id != "" {
				r = r.WithContext(logger.WithRequest(r.Context(), id, ""))
			}
			next.ServeHTTP(w, r)
		})
	}
}
