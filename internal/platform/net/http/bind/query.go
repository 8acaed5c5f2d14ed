package bind

import (
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"

	perr "statcard/internal/platform/errors"
	"statcard/internal/platform/logger"
)

// decoder caches struct metadata and is safe for concurrent use
var decoder = func() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName("query")
	return d
}()

// ParseQuery fills T from URL query parameters and validates it
// fields opt in with a `query:"name"` tag
// values are trimmed, empty ones dropped, and the first value wins when a key repeats
func ParseQuery[T any](r *http.Request) (T, error) {
	var zero, dst T

	if k := reflect.TypeFor[T]().Kind(); k != reflect.Struct {
		return zero, perr.Internalf("bind: query target must be a struct, got %s", k)
	}

	if err := decoder.Decode(&dst, trimmed(r.URL.Query())); err != nil {
		var de form.DecodeErrors
		if !errors.As(err, &de) {
			logger.Get().Error().Err(err).Msg("query decoder internal error")
			return zero, perr.Internalf("query decode error")
		}
		keys := make([]string, 0, len(de))
		for k := range de {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s has an invalid value", keys[0]), keys[0])
	}

	if err := Get().Validate.Struct(dst); err != nil {
		if inv, ok := err.(*validator.InvalidValidationError); ok {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.Internalf("validation error")
		}
		field, msg := ValidationFieldAndMessage(err)
		return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
	}
	return dst, nil
}

func trimmed(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, vs := range q {
		if len(vs) == 0 {
			continue
		}
		if v := strings.TrimSpace(vs[0]); v != "" {
			out[k] = []string{v}
		}
	}
	return out
}
