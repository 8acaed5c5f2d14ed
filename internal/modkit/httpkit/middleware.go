package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"statcard/internal/platform/config"
	"statcard/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	RequestTimeout time.Duration // per request deadline, owns every upstream call
	SlowRequest    time.Duration // access log warn threshold
	MaxInFlight    int           // 0 disables throttling
	Backlog        int
	BacklogWait    time.Duration
	CORSMaxAge     int // seconds
}

// DefaultStackOptions are the values used when nothing is configured
func DefaultStackOptions() StackOptions {
	return StackOptions{
		RequestTimeout: 30 * time.Second,
		SlowRequest:    3 * time.Second,
		Backlog:        64,
		BacklogWait:    5 * time.Second,
		CORSMaxAge:     600,
	}
}

// StackFromConfig reads REQUEST_TIMEOUT, SLOW_REQUEST, MAX_INFLIGHT, BACKLOG and BACKLOG_WAIT
func StackFromConfig(cfg config.Conf) StackOptions {
	d := DefaultStackOptions()
	return StackOptions{
		RequestTimeout: cfg.MayDuration("REQUEST_TIMEOUT", d.RequestTimeout),
		SlowRequest:    cfg.MayDuration("SLOW_REQUEST", d.SlowRequest),
		MaxInFlight:    cfg.MayInt("MAX_INFLIGHT", d.MaxInFlight),
		Backlog:        cfg.MayInt("BACKLOG", d.Backlog),
		BacklogWait:    cfg.MayDuration("BACKLOG_WAIT", d.BacklogWait),
		CORSMaxAge:     d.CORSMaxAge,
	}
}

// CommonStack is the middleware every route runs behind, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.LogContext(),
		middleware.RealIP(),

		middleware.RecoverJSON,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		// cards are embedded cross origin
		middleware.CORS(middleware.CORSOptions{MaxAge: o.CORSMaxAge}),
		middleware.Heartbeat("/health"),
		middleware.Throttle(o.MaxInFlight, o.Backlog, o.BacklogWait),

		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.RequestTimeout),
	}
}
