package handlers

import (
	"migros-delivery/internal/api/dto"
	"migros-delivery/internal/ports"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

const defaultRunLimit = 20

// RunHandler exposes the planning history.
type RunHandler struct {
	Runs ports.RunStore
}

func (h *RunHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	if h.Runs == nil {
		writeError(w, r, http.StatusNotFound, "run history is not enabled")
		return
	}

	limit := defaultRunLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 1000")
			return
		}
		limit = n
	}

	runs, err := h.Runs.ListRuns(r.Context(), limit)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list runs failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRunsResponse{Runs: make([]dto.RunResponse, 0, len(runs))}
	for _, run := range runs {
		res.Runs = append(res.Runs, dto.RunResponse{
			RunID:       run.RunID,
			Fingerprint: run.Fingerprint,
			Route:       []int(run.Route),
			Distance:    run.Distance,
			PointCount:  run.PointCount,
			PlannedAt:   run.PlannedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
