// Package httpkit is the routing surface modules build against
// modules import it instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "statcard/internal/platform/net/http"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Envelope is the body of meta and error responses
	Envelope = phttp.Envelope
	// Response is a status, body and headers produced by a handler
	Response = phttp.Response
)

// Get registers h at path
// a returned value goes out in the data envelope, a Response is written as is, an error through the error envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.Handle(func(req *http.Request) Response {
		out, err := h(req)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return phttp.OK(out)
	}))
}

// MountUnder opens a sub router at prefix, installs mw on it, then hands it to mount
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
