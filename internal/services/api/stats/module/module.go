// Package module wires stats into the API using modkit
package module

import (
	modkit "statcard/internal/modkit"
	"statcard/internal/modkit/httpkit"
	"statcard/internal/platform/net/middleware"
	statshttp "statcard/internal/services/api/stats/http"
	statssvc "statcard/internal/services/api/stats/service"
)

// Module implements the stats module
type Module struct {
	modkit.Base
}

// New constructs the stats module; deps.GitHub is required
// options come from FromConfig(deps.Cfg) with non zero overrides applied on top
func New(deps modkit.Deps, overrides statssvc.Options, opts ...modkit.Option) modkit.Module {
	if deps.GitHub == nil {
		panic("stats module requires a GitHub client")
	}
	o := merge(FromConfig(deps.Cfg), overrides)
	svc := statssvc.New(deps.GitHub, o)

	deps.Logger("stats").Debug().
		Int("repo_limit", o.RepoLimit).
		Int("top_languages", o.TopLanguages).
		Bool("graphql", deps.GitHub.HasToken()).
		Msg("stats module ready")

	base := []modkit.Option{
		modkit.WithName("stats"),
		modkit.WithPrefix("/stats"),
		modkit.WithMiddlewares(middleware.CacheControl(CacheMaxAge(deps.Cfg))),
		modkit.WithRoutes(func(r httpkit.Router) { statshttp.Register(r, svc) }),
	}
	return &Module{Base: modkit.Build(append(base, opts...)...)}
}

func merge(opts, o statssvc.Options) statssvc.Options {
	if o.RepoLimit != 0 {
		opts.RepoLimit = o.RepoLimit
	}
	if o.IncludeForks {
		opts.IncludeForks = true
	}
	if o.TopLanguages != 0 {
		opts.TopLanguages = o.TopLanguages
	}
	if o.LangConcurrency != 0 {
		opts.LangConcurrency = o.LangConcurrency
	}
	if o.ContribDays != 0 {
		opts.ContribDays = o.ContribDays
	}
	if o.UserTimeout != 0 {
		opts.UserTimeout = o.UserTimeout
	}
	if o.ReposTimeout != 0 {
		opts.ReposTimeout = o.ReposTimeout
	}
	if o.LangTimeout != 0 {
		opts.LangTimeout = o.LangTimeout
	}
	if o.GraphQLTimeout != 0 {
		opts.GraphQLTimeout = o.GraphQLTimeout
	}
	return opts
}
