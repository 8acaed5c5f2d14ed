// @title         GitHub User Stats API
// @version       1.0
// @description   Profile statistics and SVG stat cards for GitHub users

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	gh "statcard/internal/adapters/github"
	"statcard/internal/platform/config"
	"statcard/internal/platform/logger"
	phttp "statcard/internal/platform/net/http"

	"statcard/internal/services/api"
)

func main() {
	// .env is optional; real env wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(err)
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	ghCfg := root.Prefix("GITHUB_")

	// bring up logging early
	l := logger.Get()

	client := gh.NewClient(gh.Options{
		BaseURL:    ghCfg.MayString("API_URL", ""),
		GraphQLURL: ghCfg.MayString("GRAPHQL_URL", ""),
		Token:      ghCfg.MayString("TOKEN", ""),
	})
	if !client.HasToken() {
		l.Warn().Msg("GITHUB_TOKEN not set; contribution data disabled and REST calls are anonymous")
	}

	// http server (reads CORE_API_API_PORT and the CORE_API_*_TIMEOUT keys)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			GitHub:         client,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run drains in-flight requests once ctx is cancelled
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
