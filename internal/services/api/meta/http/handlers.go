// Package http serves the greeting at / and the operational routes under /meta
package http

import (
	"context"
	"net/http"
	"time"

	gh "statcard/internal/adapters/github"
	"statcard/internal/core/version"
	"statcard/internal/modkit/httpkit"
)

// WelcomeMessage is served at /
const WelcomeMessage = "Welcome to the GitHub User Stats API"

// Upstream is the slice of the GitHub client the meta routes need
type Upstream interface {
	Ping(context.Context) error
	RateLimit(context.Context) (gh.RateLimit, error)
	HasToken() bool
}

// Deps are the handler dependencies; a nil GitHub marks the dependency as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	GitHub      Upstream
}

const (
	pingTimeout  = 2 * time.Second
	quotaTimeout = 5 * time.Second
)

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	m := &meta{Deps: d}
	httpkit.Get(r, "/health", m.health)
	httpkit.Get(r, "/ready", m.ready)
	httpkit.Get(r, "/version", m.version)
	httpkit.Get(r, "/service", m.service)
	httpkit.Get(r, "/rate_limit", m.rateLimit)
}

type meta struct{ Deps }

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// Welcome is the root greeting
type Welcome struct {
	Message string `json:"message" example:"Welcome to the GitHub User Stats API"`
}

// Root answers GET /
// @Summary Liveness greeting
// @Tags Meta
// @Produce json
// @Success 200 {object} Welcome ok
// @Router / [get]
func Root(w http.ResponseWriter, _ *http.Request) {
	httpkit.WriteJSON(w, http.StatusOK, Welcome{Message: WelcomeMessage})
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"statcard-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-19T13:05:00Z"`
}

// @Summary Liveness with process start time
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse ok
// @Router /meta/health [get]
func (m *meta) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: m.ServiceName, Started: stamp(m.StartedAt), Now: stamp(time.Now())}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo ok
// @Router /meta/version [get]
func (m *meta) version(*http.Request) (any, error) { return version.Info(), nil }

// ServiceResponse reports uptime in whole seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"statcard-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse ok
// @Router /meta/service [get]
func (m *meta) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    m.ServiceName,
		Started: stamp(m.StartedAt),
		Uptime:  int64(time.Since(m.StartedAt) / time.Second),
	}, nil
}
