package handlers

import (
	"errors"
	"migros-delivery/internal/api/dto"
	"migros-delivery/internal/domain"
	"migros-delivery/internal/render"
	"migros-delivery/internal/services"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// RouteHandler plans the tour for the current points and serves it as
// JSON or as a rendered canvas.
type RouteHandler struct {
	Planner *services.Planner
	Render  render.Options
}

// plan runs the planner and writes an error response on failure.
// An empty point collection is a client-visible 422, anything else a 500.
func (h *RouteHandler) plan(w http.ResponseWriter, r *http.Request) (*domain.RoutePlan, bool) {
	plan, err := h.Planner.Plan(r.Context())
	if err == nil {
		return plan, true
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		writeError(w, r, http.StatusUnprocessableEntity, "no points to route")
		return nil, false
	}

	zerolog.Ctx(r.Context()).Error().Err(err).Msg("plan route failed")
	writeError(w, r, http.StatusInternalServerError, "internal server error")
	return nil, false
}

func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	plan, ok := h.plan(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		Route:       []int(plan.Route),
		Distance:    plan.Distance,
		Fingerprint: plan.Fingerprint,
		PlannedAt:   plan.PlannedAt,
		Points:      toPointResponses(plan.Points),
	})
}

func (h *RouteHandler) scene(w http.ResponseWriter, r *http.Request) (*render.Scene, bool) {
	if !allowGet(w, r) {
		return nil, false
	}

	plan, ok := h.plan(w, r)
	if !ok {
		return nil, false
	}

	scene, err := render.NewScene(plan, h.Render)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render scene failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return scene, true
}

func (h *RouteHandler) PNG(w http.ResponseWriter, r *http.Request) {
	scene, ok := h.scene(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := render.EncodeImage(w, scene, imaging.PNG); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("encode png failed")
	}
}

func (h *RouteHandler) SVG(w http.ResponseWriter, r *http.Request) {
	scene, ok := h.scene(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if err := render.WriteSVG(w, scene); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("write svg failed")
	}
}
