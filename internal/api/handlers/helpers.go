package handlers

import (
	"encoding/json"
	"migros-delivery/internal/api/dto"
	"migros-delivery/internal/domain"
	"net/http"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).Str("path", r.URL.Path).
			Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// allowGet rejects any method other than GET.
func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func toPointResponses(points []domain.Point) []dto.PointResponse {
	out := make([]dto.PointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.PointResponse{
			ID:    p.ID,
			X:     p.X,
			Y:     p.Y,
			Depot: p.ID == domain.DepotID,
		})
	}
	return out
}
