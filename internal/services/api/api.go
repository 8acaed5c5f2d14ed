// Package api provides the HTTP API for the application
package api

import (
	gh "statcard/internal/adapters/github"
	"statcard/internal/platform/config"
	"statcard/internal/platform/logger"
	phttp "statcard/internal/platform/net/http"

	"statcard/internal/modkit"
	"statcard/internal/modkit/httpkit"
	"statcard/internal/modkit/module"
	"statcard/internal/modkit/swaggerkit"

	metahttp "statcard/internal/services/api/meta/http"
	metamod "statcard/internal/services/api/meta/module"
	statsmod "statcard/internal/services/api/stats/module"
	statssvc "statcard/internal/services/api/stats/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	GitHub         *gh.Client
	Stats          statssvc.Options
	Stack          *httpkit.StackOptions // nil reads CORE_API_* from Config
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log:    logger.Named("api"),
		Cfg:    opt.Config,
		GitHub: opt.GitHub,
	}

	mods := []module.Module{
		metamod.New(deps),
		statsmod.New(deps, opt.Stats),
	}

	stack := httpkit.StackFromConfig(opt.Config.Prefix("CORE_API_"))
	if opt.Stack != nil {
		stack = *opt.Stack
	}

	// routes live at the root with a common middleware stack
	httpkit.MountUnder(r, "/", httpkit.CommonStack(stack), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(api, opt.Config.Prefix("CORE_API_"), opt.EnableSwagger)
		phttp.MountProfiler(api, "/debug", opt.EnableProfiler)

		api.Get("/", metahttp.Root)

		module.MountAll(api, mods...)
	})
}
