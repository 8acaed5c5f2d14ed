package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "statcard/internal/platform/net/http"
)

type fakeModule struct{ name string }

func (f fakeModule) Name() string { return f.name }
func (f fakeModule) MountRoutes(r phttp.Router) {
	r.Get("/"+f.name, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(f.name))
	})
}

var _ Module = fakeModule{}

func TestMountAll(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	MountAll(phttp.AdaptChi(mux),
		fakeModule{name: "stats"},
		fakeModule{name: "meta"},
	)

	for _, path := range []string{"/stats", "/meta"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != path[1:] {
			t.Fatalf("%s = %d %q", path, rec.Code, rec.Body.String())
		}
	}
}
