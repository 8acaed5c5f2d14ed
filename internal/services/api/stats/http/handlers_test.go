package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "statcard/internal/platform/errors"
	phttp "statcard/internal/platform/net/http"
	kit "statcard/internal/platform/testkit"
	"statcard/internal/services/api/stats/domain"
)

type fakeSvc struct {
	rec  domain.StatsRecord
	svg  []byte
	err  error
	seen string
}

func (f *fakeSvc) Stats(_ context.Context, username string) (domain.StatsRecord, error) {
	f.seen = username
	return f.rec, f.err
}

func (f *fakeSvc) Card(_ context.Context, username string) ([]byte, error) {
	f.seen = username
	return f.svg, f.err
}

func serve(t *testing.T, s *fakeSvc, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/stats", func(sub phttp.Router) { Register(sub, s) })

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, target, nil))
	return rec
}

func TestStats_OK(t *testing.T) {
	s := &fakeSvc{rec: domain.StatsRecord{Username: "octocat", Followers: 7, Languages: []domain.LanguageShare{}}}
	rec := serve(t, s, "/stats/?username=octocat")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if s.seen != "octocat" {
		t.Fatalf("service saw %q", s.seen)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["username"] != "octocat" || got["followers"] != float64(7) {
		t.Fatalf("body = %v", got)
	}
	if _, enveloped := got["data"]; enveloped {
		t.Fatal("record should not be wrapped in an envelope")
	}
}

func TestCard_OK(t *testing.T) {
	s := &fakeSvc{svg: []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)}
	rec := serve(t, s, "/stats/svg?username=octocat")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentTypeSVG {
		t.Fatalf("content-type = %q", ct)
	}
	kit.MustContain(t, rec.Body.String(), "<svg")
}

func TestNotFoundCollapsing(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", perr.NotFoundf("user ghost not found")},
		{"upstream failure", perr.Wrapf(errors.New("timeout"), perr.ErrorCodeUnavailable, "profile lookup failed")},
	}
	for _, tc := range cases {
		for _, path := range []string{"/stats/?username=ghost", "/stats/svg?username=ghost"} {
			t.Run(tc.name+" "+path, func(t *testing.T) {
				rec := serve(t, &fakeSvc{err: tc.err}, path)
				if rec.Code != stdhttp.StatusNotFound {
					t.Fatalf("status = %d", rec.Code)
				}
				if rec.Body.String() != domain.NotFoundBody {
					t.Fatalf("body = %q", rec.Body.String())
				}
				if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
					t.Fatalf("content-type = %q", ct)
				}
			})
		}
	}
}

func TestUnexpectedErrorUsesEnvelope(t *testing.T) {
	rec := serve(t, &fakeSvc{err: perr.Internalf("render failed")}, "/stats/svg?username=octocat")
	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMissingUsername(t *testing.T) {
	for _, path := range []string{
		"/stats/",
		"/stats/?username=",
		"/stats/svg?username=%20",
	} {
		t.Run(path, func(t *testing.T) {
			s := &fakeSvc{}
			rec := serve(t, s, path)
			if rec.Code != stdhttp.StatusBadRequest {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
			if s.seen != "" {
				t.Fatal("service should not be called on invalid input")
			}
			kit.MustContain(t, rec.Body.String(), "username")
		})
	}
}

func TestMalformedUsernameIsNotFound(t *testing.T) {
	for _, name := range []string{"-bad-", "dou--ble", "a..b"} {
		t.Run(name, func(t *testing.T) {
			s := &fakeSvc{err: perr.NotFoundf("user %s not found", name)}
			rec := serve(t, s, "/stats/svg?username="+name)
			if s.seen != name {
				t.Fatalf("service saw %q, want %q", s.seen, name)
			}
			if rec.Code != stdhttp.StatusNotFound || rec.Body.String() != domain.NotFoundBody {
				t.Fatalf("got %d %q", rec.Code, rec.Body.String())
			}
		})
	}
}
