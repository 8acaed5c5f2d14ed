package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
		name string
	}{
		{ErrorCodeNotFound, http.StatusNotFound, "not_found"},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity, "invalid_argument"},
		{ErrorCodeValidation, http.StatusBadRequest, "validation"},
		{ErrorCodeJSON, http.StatusBadRequest, "json"},
		{ErrorCodeUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable, "unavailable"},
		{ErrorCodePanic, http.StatusInternalServerError, "panic"},
		{ErrorCodeUnknown, http.StatusInternalServerError, "unknown"},
		{999, http.StatusInternalServerError, "unknown"},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Errorf("HTTPStatusCode(%d) = %d, want %d", c.code, got, c.want)
		}
		if got := c.code.String(); got != c.name {
			t.Errorf("String(%d) = %q, want %q", c.code, got, c.name)
		}
	}
}

func TestError_RenderAndUnwrap(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	cause := stderrs.New("dial tcp: timeout")
	err := Wrapf(cause, ErrorCodeUnavailable, "github GET %s", "/users/octocat")
	if err.Error() != "github GET /users/octocat: dial tcp: timeout" {
		t.Fatalf("render = %q", err.Error())
	}
	if !stderrs.Is(err, cause) || Root(err) != cause {
		t.Fatal("cause not reachable")
	}
	if HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", HTTPStatus(err))
	}

	outer := fmt.Errorf("stats: %w", err)
	if !IsCode(outer, ErrorCodeUnavailable) {
		t.Fatal("code lost through fmt wrapping")
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown || Root(nil) != nil {
		t.Fatal("foreign errors should be unknown")
	}
}

func TestWithFieldAndOp_CopyOnWrite(t *testing.T) {
	base := NotFoundf("user %q", "ghost")
	tagged := WithOp(WithField(base, "username"), "fetch_profile")

	e, ok := As(tagged)
	if !ok || e.Field() != "username" || e.Op() != "fetch_profile" || e.Code() != ErrorCodeNotFound {
		t.Fatalf("tagged = %+v", e)
	}
	if orig, _ := As(base); orig.Field() != "" || orig.Op() != "" {
		t.Fatal("original mutated")
	}

	foreign := stderrs.New("x")
	if WithField(foreign, "f") != foreign || WithOp(foreign, "o") != foreign {
		t.Fatal("foreign errors should pass through")
	}
}

func TestWireFrom(t *testing.T) {
	if (WireFrom(nil) != Wire{}) {
		t.Fatal("nil should give zero wire")
	}

	w := WireFrom(WithField(New(ErrorCodeValidation, "username is required"), "username"))
	if w.Code != ErrorCodeValidation || w.Message != "username is required" || w.Field != "username" {
		t.Fatalf("wire = %+v", w)
	}

	w = WireFrom(stderrs.New("boom"))
	if w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("foreign wire = %+v", w)
	}
}

func TestShorthandConstructors(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Unauthorizedf("x"), ErrorCodeUnauthorized},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if CodeOf(c.err) != c.want {
			t.Errorf("%v: code = %v, want %v", c.err, CodeOf(c.err), c.want)
		}
	}
}
