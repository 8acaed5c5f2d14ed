package http

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	gh "statcard/internal/adapters/github"
	phttp "statcard/internal/platform/net/http"
)

type fakeGitHub struct {
	pingErr error
	quota   gh.RateLimit
	token   bool
}

func (f fakeGitHub) Ping(stdctx.Context) error { return f.pingErr }

func (f fakeGitHub) RateLimit(stdctx.Context) (gh.RateLimit, error) { return f.quota, f.pingErr }

func (f fakeGitHub) HasToken() bool { return f.token }

func mount(d Deps) http.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Get("/", Root)
	r.Route("/meta", func(sub phttp.Router) { Register(sub, d) })
	return mux
}

func get(t *testing.T, h http.Handler, path string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %s: %v (%s)", path, err, rec.Body.String())
	}
	return rec.Code, body
}

// data unwraps the envelope used by meta routes
func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data in %v", body)
	}
	return d
}

func TestRoot(t *testing.T) {
	code, body := get(t, mount(Deps{}), "/")
	if code != http.StatusOK || body["message"] != WelcomeMessage {
		t.Fatalf("got %d %v", code, body)
	}
}

func TestHealthAndService(t *testing.T) {
	h := mount(Deps{ServiceName: "statcard-api", StartedAt: time.Now().Add(-time.Minute)})

	code, body := get(t, h, "/meta/health")
	if code != http.StatusOK {
		t.Fatalf("health status = %d", code)
	}
	if d := data(t, body); d["ok"] != true || d["service"] != "statcard-api" {
		t.Fatalf("health = %v", d)
	}

	_, body = get(t, h, "/meta/service")
	if d := data(t, body); d["uptime"].(float64) < 59 {
		t.Fatalf("service = %v", d)
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		github Upstream
		want   string
	}{
		{"ok", fakeGitHub{}, "ok"},
		{"fail", fakeGitHub{pingErr: errors.New("dial")}, "fail"},
		{"skipped", nil, "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, body := get(t, mount(Deps{GitHub: tc.github}), "/meta/ready")
			if d := data(t, body); d["status"] != tc.want {
				t.Fatalf("status = %v, want %s", d["status"], tc.want)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	h := mount(Deps{GitHub: fakeGitHub{token: true, quota: gh.RateLimit{Limit: 5000, Remaining: 12, Reset: 0}}})
	code, body := get(t, h, "/meta/rate_limit")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	d := data(t, body)
	if d["authenticated"] != true || d["remaining"] != float64(12) || d["reset"] != "1970-01-01T00:00:00Z" {
		t.Fatalf("rate limit = %v", d)
	}
}

func TestRateLimit_NotConfigured(t *testing.T) {
	code, _ := get(t, mount(Deps{}), "/meta/rate_limit")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", code)
	}
}

func TestOverall(t *testing.T) {
	cases := []struct {
		checks []ReadyCheck
		want   string
	}{
		{nil, CheckOK},
		{[]ReadyCheck{{Status: CheckOK}}, CheckOK},
		{[]ReadyCheck{{Status: CheckSkipped}, {Status: CheckOK}}, "degraded"},
		{[]ReadyCheck{{Status: CheckSkipped}, {Status: CheckFail}}, CheckFail},
	}
	for _, c := range cases {
		if got := overall(c.checks); got != c.want {
			t.Errorf("overall(%v) = %q, want %q", c.checks, got, c.want)
		}
	}
}

func TestVersion(t *testing.T) {
	_, body := get(t, mount(Deps{}), "/meta/version")
	if d := data(t, body); d["service"] != "statcard-api" {
		t.Fatalf("version = %v", d)
	}
}
