// Package http holds the router seam, the server and the response writers
// raw writers (JSON, Text, Bytes) serve payloads as is; everything else goes out in an Envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "statcard/internal/platform/errors"
	pnet "statcard/internal/platform/net"
)

// Envelope is the body of meta and error responses
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Text writes s as text/plain with the given status
func Text(w stdhttp.ResponseWriter, status int, s string) {
	Bytes(w, status, "text/plain; charset=utf-8", []byte(s))
}

// Bytes writes b verbatim with the given content type and status
func Bytes(w stdhttp.ResponseWriter, status int, contentType string, b []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func envelope(r *stdhttp.Request, status int) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
	}
}

// RespondError writes err as an envelope with its mapped status
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)

	env := envelope(r, status)
	env.Code = wire.Code
	env.Error = wire.Message
	JSON(w, status, env)
}

// Response is what return style handlers produce
// a Body that is an error is written through RespondError
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response whose status comes from err
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response returning func to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	env := envelope(r, status)
	env.Data = resp.Body
	JSON(w, status, env)
}
