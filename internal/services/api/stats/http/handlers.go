// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"statcard/internal/modkit/httpkit"
	perr "statcard/internal/platform/errors"
	"statcard/internal/platform/logger"
	"statcard/internal/services/api/stats/domain"
	svc "statcard/internal/services/api/stats/service"
)

// ContentTypeSVG is the media type of a rendered card
const ContentTypeSVG = "image/svg+xml; charset=utf-8"

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// structured record
	r.Get("/", h.stats)

	// rendered card
	r.Get("/svg", h.card)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /stats Stats statsRecord
// @Summary Stats for a GitHub user
// @Tags Stats
// @Produce json
// @Param username query string true "GitHub login"
// @Success 200 {object} domain.StatsRecord "ok"
// @Failure 400 {object} httpkit.Envelope "missing username"
// @Failure 404 {string} string "User not found"
// @Router /stats [get]
func (h *handlers) stats(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := httpkit.ParseQuery[domain.StatsQuery](r)
	if err != nil {
		httpkit.WriteError(w, r, err)
		return
	}
	r = r.WithContext(logger.WithRequest(r.Context(), "", in.Username))
	rec, err := h.svc.Stats(r.Context(), in.Username)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpkit.WriteJSON(w, stdhttp.StatusOK, rec)
}

// swagger:route GET /stats/svg Stats statsCard
// @Summary Stat card for a GitHub user
// @Tags Stats
// @Produce image/svg+xml
// @Param username query string true "GitHub login"
// @Success 200 {string} string "svg document"
// @Failure 400 {object} httpkit.Envelope "missing username"
// @Failure 404 {string} string "User not found"
// @Router /stats/svg [get]
func (h *handlers) card(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := httpkit.ParseQuery[domain.StatsQuery](r)
	if err != nil {
		httpkit.WriteError(w, r, err)
		return
	}
	r = r.WithContext(logger.WithRequest(r.Context(), "", in.Username))
	b, err := h.svc.Card(r.Context(), in.Username)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpkit.WriteBytes(w, stdhttp.StatusOK, ContentTypeSVG, b)
}

// fail collapses not found and upstream failures into the same 404 body
// anything else is a programming error and goes out as an envelope
func (h *handlers) fail(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	log := logger.C(r.Context())
	switch perr.CodeOf(err) {
	case perr.ErrorCodeNotFound:
		log.Debug().Msg("stats user not found")
	case perr.ErrorCodeUnavailable:
		log.Warn().Err(err).Msg("stats unavailable, answering not found")
	default:
		log.Error().Err(err).Msg("stats failed")
		httpkit.WriteError(w, r, err)
		return
	}
	httpkit.WriteText(w, stdhttp.StatusNotFound, domain.NotFoundBody)
}
