package api

import (
	"migros-delivery/internal/api/handlers"
	"migros-delivery/internal/ports"
	"migros-delivery/internal/render"
	"migros-delivery/internal/services"
	"net/http"

	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// runs may be nil when no run history is configured.
func NewRouter(
	log zerolog.Logger,
	source ports.PointSource,
	planner *services.Planner,
	runs ports.RunStore,
	opts render.Options,
) http.Handler {
	mux := http.NewServeMux()

	pointHandler := &handlers.PointHandler{Source: source}
	routeHandler := &handlers.RouteHandler{Planner: planner, Render: opts}
	runHandler := &handlers.RunHandler{Runs: runs}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/points", pointHandler.List)
	mux.HandleFunc("/route", routeHandler.Route)
	mux.HandleFunc("/route.png", routeHandler.PNG)
	mux.HandleFunc("/route.svg", routeHandler.SVG)
	mux.HandleFunc("/runs", runHandler.List)

	return loggingMiddleware(log, mux)
}
