package modkit

import (
	"net/http"

	"statcard/internal/modkit/httpkit"
	str "statcard/internal/platform/strings"
)

// Option mutates a module Base during Build
type Option func(*Base)

// Base carries the mount wiring every module shares
// modules embed it and supply their routes through options
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	routes []func(httpkit.Router)
}

// Build applies opts in order; later options win for scalar fields
func Build(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// WithName sets the module name used in logs
func WithName(name string) Option {
	return func(b *Base) { b.name = name }
}

// WithPrefix sets the mount path
func WithPrefix(prefix string) Option {
	return func(b *Base) { b.prefix = prefix }
}

// WithMiddlewares appends per module middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mw = append(b.mw, mw...) }
}

// WithRoutes appends a route registration func
func WithRoutes(fn func(httpkit.Router)) Option {
	return func(b *Base) {
		if fn != nil {
			b.routes = append(b.routes, fn)
		}
	}
}

// Name panics when the module was built without a name
func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the normalized mount path
func (b Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns a copy of the module middleware chain
func (b Base) Middlewares() []func(http.Handler) http.Handler {
	return append([]func(http.Handler) http.Handler(nil), b.mw...)
}

// MountRoutes mounts every registered route func under Prefix
func (b Base) MountRoutes(r httpkit.Router) {
	r.Route(b.Prefix(), func(rr httpkit.Router) {
		for _, mw := range b.mw {
			rr.Use(mw)
		}
		for _, fn := range b.routes {
			fn(rr)
		}
	})
}
