// Package modkit provides module wiring and core deps
package modkit

import "statcard/internal/modkit/module"

// Module is the surface the api mounts
type Module = module.Module
