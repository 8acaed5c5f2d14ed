package modkit

import (
	gh "statcard/internal/adapters/github"
	"statcard/internal/platform/config"
	"statcard/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log    *logger.Logger
	Cfg    config.Conf
	GitHub *gh.Client
}

// Logger returns a child of d.Log tagged with the module name
// falls back to the global logger when none was wired
func (d Deps) Logger(module string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(module)
	}
	l := d.Log.With().Str("component", module).Logger()
	return &l
}
