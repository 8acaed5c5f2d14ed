package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"statcard/internal/platform/config"
	pnet "statcard/internal/platform/net"
)

func applyStack(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestStackFromConfig(t *testing.T) {
	if got := StackFromConfig(config.New()); got != DefaultStackOptions() {
		t.Fatalf("defaults = %+v", got)
	}

	t.Setenv("REQUEST_TIMEOUT", "12s")
	t.Setenv("MAX_INFLIGHT", "16")
	got := StackFromConfig(config.New())
	if got.RequestTimeout != 12*time.Second || got.MaxInFlight != 16 {
		t.Fatalf("env = %+v", got)
	}
}

func TestCommonStack(t *testing.T) {
	var (
		rid         string
		hasDeadline bool
	)
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid = pnet.RequestID(r.Context())
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusNoContent)
	})
	root := applyStack(final, CommonStack(DefaultStackOptions()))

	req := httptest.NewRequest(http.MethodGet, "/stats/svg", nil)
	req.Header.Set("Origin", "https://github.com")
	rec := httptest.NewRecorder()
	root.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rid == "" || !hasDeadline {
		t.Fatalf("request id %q deadline %v", rid, hasDeadline)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestCommonStack_Heartbeat(t *testing.T) {
	root := applyStack(http.NotFoundHandler(), CommonStack(DefaultStackOptions()))

	rec := httptest.NewRecorder()
	root.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("heartbeat = %d", rec.Code)
	}
}
