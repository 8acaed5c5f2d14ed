package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "statcard/internal/platform/errors"
	phttp "statcard/internal/platform/net/http"
	kit "statcard/internal/platform/testkit"
)

func TestGet(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	Get(r, "/quota", func(*http.Request) (any, error) { return map[string]int{"n": 1}, nil })
	Get(r, "/down", func(*http.Request) (any, error) { return nil, perr.Unavailablef("github down") })
	Get(r, "/plain", func(*http.Request) (any, error) { return nil, errors.New("nah") })
	Get(r, "/raw", func(*http.Request) (any, error) {
		return Response{Status: http.StatusAccepted, Body: "queued"}, nil
	})

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/quota", http.StatusOK, `"data":{"n":1}`},
		{"/down", http.StatusServiceUnavailable, "github down"},
		{"/plain", http.StatusInternalServerError, `"status":"Internal Server Error"`},
		{"/raw", http.StatusAccepted, "queued"},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, c.path, nil))
			if rec.Code != c.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, c.status, rec.Body.String())
			}
			kit.MustContain(t, rec.Body.String(), c.body)
		})
	}
}

func TestMountUnder(t *testing.T) {
	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Mounted", "1")
			next.ServeHTTP(w, r)
		})
	}

	cases := []struct {
		name   string
		prefix string
		path   string
		mw     []func(http.Handler) http.Handler
		want   string
	}{
		{"root with middleware", "/", "/stats", []func(http.Handler) http.Handler{mark}, "1"},
		{"prefix without middleware", "/v1", "/v1/stats", nil, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mux := chi.NewRouter()
			MountUnder(phttp.AdaptChi(mux), c.prefix, c.mw, func(r Router) {
				r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
			})

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, c.path, nil))
			if rec.Code != http.StatusAccepted {
				t.Fatalf("status = %d", rec.Code)
			}
			if rec.Header().Get("X-Mounted") != c.want {
				t.Fatalf("middleware header = %q", rec.Header().Get("X-Mounted"))
			}
		})
	}
}
