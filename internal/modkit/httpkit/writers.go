package httpkit

import (
	"net/http"

	phttp "statcard/internal/platform/net/http"
	"statcard/internal/platform/net/http/bind"
)

// ParseQuery binds and validates query parameters into T
func ParseQuery[T any](r *http.Request) (T, error) { return bind.ParseQuery[T](r) }

// WriteJSON writes v as bare JSON without the envelope
func WriteJSON(w http.ResponseWriter, status int, v any) { phttp.JSON(w, status, v) }

// WriteText writes a text/plain body
func WriteText(w http.ResponseWriter, status int, s string) { phttp.Text(w, status, s) }

// WriteBytes writes b with the given content type
func WriteBytes(w http.ResponseWriter, status int, contentType string, b []byte) {
	phttp.Bytes(w, status, contentType, b)
}

// WriteError writes err as an error envelope
func WriteError(w http.ResponseWriter, r *http.Request, err error) { phttp.RespondError(w, r, err) }
