// Package logger owns the process wide zerolog root and the request scoped children built from it
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"statcard/internal/platform/config/raw"
)

// Logger is the logging type used across the module
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level       string // zerolog level name; unknown names mean info
	Format      string // "json" or "console"
	Service     string
	Writer      io.Writer // stdout when nil
	WithCaller  bool
	SampleEvery int // keep one line in N; <= 1 keeps all
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and LOG_SAMPLE_EVERY
// it uses the raw reader since config itself logs
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       rc.Get("LEVEL", "info"),
		Format:      strings.ToLower(rc.Get("FORMAT", "json")),
		Service:     rc.Get("SERVICE", "statcard-api"),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init builds the root logger; only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stdout
		if opt.Writer != nil {
			w = opt.Writer
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		zc := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if opt.Service != "" {
			zc = zc.Str("service", opt.Service)
		}
		if opt.WithCaller {
			zc = zc.Caller()
		}
		l := zc.Logger()
		if opt.SampleEvery > 1 {
			l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}
		root.Store(&l)
	})
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Named returns a child tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

type ctxKey struct{}

// request holds the per request fields C attaches
type request struct {
	id       string
	username string
}

// WithRequest merges non empty fields into ctx; earlier values survive empty arguments
func WithRequest(ctx context.Context, reqID, username string) context.Context {
	if reqID == "" && username == "" {
		return ctx
	}
	cur, _ := ctx.Value(ctxKey{}).(request)
	if reqID != "" {
		cur.id = reqID
	}
	if username != "" {
		cur.username = username
	}
	return context.WithValue(ctx, ctxKey{}, cur)
}

// C returns a child of the root carrying request_id and username from ctx
func C(ctx context.Context) *Logger {
	req, _ := ctx.Value(ctxKey{}).(request)
	zc := Get().With()
	if req.id != "" {
		zc = zc.Str("request_id", req.id)
	}
	if req.username != "" {
		zc = zc.Str("username", req.username)
	}
	l := zc.Logger()
	return &l
}
