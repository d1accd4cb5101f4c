package handlers

import (
	"migros-delivery/internal/api/dto"
	"migros-delivery/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

// PointHandler exposes read-only point retrieval endpoints.
type PointHandler struct {
	Source ports.PointSource
}

func (h *PointHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	points, err := h.Source.ListPoints(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list points failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListPointsResponse{Points: toPointResponses(points)})
}
