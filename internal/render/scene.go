// Package render turns a computed plan into a 2D picture of the tour.
//
// NewScene does the coordinate mapping once; the sinks (raster image, SVG,
// desktop window) only draw what the Scene describes and never feed data
// back into planning.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"migros-delivery/internal/domain"
	"strconv"
)

const (
	DefaultScale      = 500
	DefaultCanvasSize = 600

	buildingRadius = 5
	depotRadius    = 8
	labelOffset    = 10
	depotLabel     = "Migros"
)

var (
	BuildingColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	RouteColor      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	BackgroundColor = color.White
)

type Options struct {
	// Scale maps a normalized coordinate in [0,1] to pixels.
	Scale float64
	// Size is the side of the square canvas in pixels.
	Size int
}

func DefaultOptions() Options {
	return Options{Scale: DefaultScale, Size: DefaultCanvasSize}
}

type Marker struct {
	X, Y   float64
	Radius float64
	Label  string
	Color  color.RGBA
}

type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Scene is the resolved drawing of one plan in pixel space.
// Markers are drawn in order (buildings, then the depot on top),
// followed by the route segments.
type Scene struct {
	Width    int
	Height   int
	Markers  []Marker
	Segments []Segment
}

// NewScene lays out plan on a square canvas.
func NewScene(plan *domain.RoutePlan, opts Options) (*Scene, error) {
	if plan == nil {
		return nil, errors.New("new scene: plan is nil")
	}
	if opts.Scale <= 0 || opts.Size <= 0 {
		return nil, fmt.Errorf("new scene: scale and size must be positive (scale=%v size=%d)", opts.Scale, opts.Size)
	}

	scene := &Scene{
		Width:    opts.Size,
		Height:   opts.Size,
		Markers:  make([]Marker, 0, len(plan.Points)+1),
		Segments: make([]Segment, 0, len(plan.Route)),
	}

	for _, p := range plan.Points {
		x, y := toPixel(p, opts.Scale)
		scene.Markers = append(scene.Markers, Marker{
			X:      x,
			Y:      y,
			Radius: buildingRadius,
			Label:  strconv.Itoa(p.ID),
			Color:  BuildingColor,
		})
	}

	depot, err := plan.Depot()
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	dx, dy := toPixel(depot, opts.Scale)
	scene.Markers = append(scene.Markers, Marker{
		X:      dx,
		Y:      dy,
		Radius: depotRadius,
		Label:  depotLabel,
		Color:  RouteColor,
	})

	for i := 0; i+1 < len(plan.Route); i++ {
		start, err := domain.FindPoint(plan.Points, plan.Route[i])
		if err != nil {
			return nil, fmt.Errorf("new scene: leg %d: %w", i+1, err)
		}
		end, err := domain.FindPoint(plan.Points, plan.Route[i+1])
		if err != nil {
			return nil, fmt.Errorf("new scene: leg %d: %w", i+1, err)
		}

		x1, y1 := toPixel(start, opts.Scale)
		x2, y2 := toPixel(end, opts.Scale)
		scene.Segments = append(scene.Segments, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
	}

	return scene, nil
}

// toPixel truncates toward zero so markers land on whole pixels.
func toPixel(p domain.Point, scale float64) (float64, float64) {
	return float64(int(p.X * scale)), float64(int(p.Y * scale))
}
