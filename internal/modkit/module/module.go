// Package module defines the module contract used at bootstrap
package module

import (
	phttp "statcard/internal/platform/net/http"
)

// Module mounts its routes under a name
// it lives apart from modkit so the api package can list modules without importing their deps
type Module interface {
	MountRoutes(r phttp.Router)
	Name() string
}

// MountAll mounts each module's routes on r in order
func MountAll(r phttp.Router, mods ...Module) {
	for _, m := range mods {
		m.MountRoutes(r)
	}
}
