// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"statcard/internal/core/version"
	modkit "statcard/internal/modkit"
	"statcard/internal/modkit/httpkit"

	metahttp "statcard/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface; it exposes no ports
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module; the GitHub client is optional and only feeds readiness and quota routes
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{startedAt: time.Now()}

	d := metahttp.Deps{
		ServiceName: version.ServiceName,
		StartedAt:   m.startedAt,
	}
	// a typed nil would defeat the interface nil checks in the handlers
	if deps.GitHub != nil {
		d.GitHub = deps.GitHub
	}

	base := []modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
		modkit.WithRoutes(func(r httpkit.Router) { metahttp.Register(r, d) }),
	}
	m.Base = modkit.Build(append(base, opts...)...)
	return m
}
