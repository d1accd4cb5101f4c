// Package app runs the one-shot planning flow behind cmd/migros.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"migros-delivery/internal/adapters/input"
	"migros-delivery/internal/config"
	"migros-delivery/internal/domain"
	"migros-delivery/internal/render"
	"migros-delivery/internal/services"
	"strconv"

	"github.com/rs/zerolog"
)

const windowTitle = "Migros Delivery"

// ShowFunc displays a rendered canvas and blocks until the viewer closes.
type ShowFunc func(img image.Image, title string) error

// Run reads the points, plans the tour, prints it to out and renders it to
// the configured image file and, when enabled, a window.
func Run(ctx context.Context, cfg config.Config, out io.Writer, show ShowFunc) error {
	log := zerolog.Ctx(ctx)

	planner := services.NewPlanner(input.NewFileSource(cfg.InputPath), nil, nil)
	plan, err := planner.Plan(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if err := PrintPlan(out, plan); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if cfg.OutputPath == "" && !cfg.Window {
		return nil
	}

	scene, err := render.NewScene(plan, render.Options{Scale: cfg.Scale, Size: cfg.CanvasSize})
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if cfg.OutputPath != "" {
		if err := render.SaveImage(scene, cfg.OutputPath); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		log.Info().Str("path", cfg.OutputPath).Msg("route image written")
	}

	if cfg.Window {
		if show == nil {
			return errors.New("run: window requested but no viewer is available")
		}
		if err := show(render.DrawImage(scene), windowTitle); err != nil {
			return fmt.Errorf("run: show window: %w", err)
		}
	}

	return nil
}

// PrintPlan writes the two-line console summary:
//
//	Shortest Route: [1, 2, 3, 1]
//	Distance: 3.414213562373095
func PrintPlan(out io.Writer, plan *domain.RoutePlan) error {
	_, err := fmt.Fprintf(out, "Shortest Route: %s\nDistance: %s\n",
		plan.Route.String(),
		strconv.FormatFloat(plan.Distance, 'f', -1, 64),
	)
	if err != nil {
		return fmt.Errorf("print plan: %w", err)
	}
	return nil
}
