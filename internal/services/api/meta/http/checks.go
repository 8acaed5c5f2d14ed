package http

import (
	"context"
	"net/http"
	"time"

	perr "statcard/internal/platform/errors"
)

// Check statuses
const (
	CheckOK      = "ok"
	CheckFail    = "fail"
	CheckSkipped = "skipped"
)

// ReadyCheck is the outcome of probing one dependency
type ReadyCheck struct {
	Name   string `json:"name"            example:"github"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"github GET /rate_limit: status 503"`
}

// ReadyResponse is ok when every check passed, fail when any failed and degraded otherwise
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T13:05:00Z"`
}

func overall(checks []ReadyCheck) string {
	out := CheckOK
	for _, c := range checks {
		switch c.Status {
		case CheckFail:
			return CheckFail
		case CheckSkipped:
			out = "degraded"
		}
	}
	return out
}

// @Summary Readiness with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse ok
// @Router /meta/ready [get]
func (m *meta) ready(r *http.Request) (any, error) {
	gh := ReadyCheck{Name: "github", Status: CheckSkipped}
	if m.GitHub != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		gh.Status = CheckOK
		if err := m.GitHub.Ping(ctx); err != nil {
			gh.Status, gh.Error = CheckFail, err.Error()
		}
	}
	checks := []ReadyCheck{gh}
	return ReadyResponse{Status: overall(checks), Checks: checks, Now: stamp(time.Now())}, nil
}

// RateLimitResponse reports the REST quota left for the configured token
type RateLimitResponse struct {
	Authenticated bool   `json:"authenticated" example:"true"`
	Limit         int    `json:"limit"         example:"5000"`
	Remaining     int    `json:"remaining"     example:"4987"`
	Reset         string `json:"reset"         example:"2026-10-19T14:00:00Z"`
}

// @Summary GitHub REST quota
// @Tags Meta
// @Produce json
// @Success 200 {object} RateLimitResponse ok
// @Failure 503 {object} httpkit.Envelope "github unreachable"
// @Router /meta/rate_limit [get]
func (m *meta) rateLimit(r *http.Request) (any, error) {
	if m.GitHub == nil {
		return nil, perr.Unavailablef("rate limit source not configured")
	}
	ctx, cancel := context.WithTimeout(r.Context(), quotaTimeout)
	defer cancel()

	q, err := m.GitHub.RateLimit(ctx)
	if err != nil {
		return nil, err
	}
	return RateLimitResponse{
		Authenticated: m.GitHub.HasToken(),
		Limit:         q.Limit,
		Remaining:     q.Remaining,
		Reset:         stamp(time.Unix(int64(q.Reset), 0)),
	}, nil
}
