package services

import (
	"fmt"
	"math"
	"migros-delivery/internal/domain"
)

// Distance returns the straight-line distance between two points.
func Distance(a, b domain.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// RouteDistance sums the edge lengths of route over the referenced points.
// Every identifier in route must exist in points.
func RouteDistance(route domain.Route, points []domain.Point) (float64, error) {
	total := 0.0
	for i := 0; i+1 < len(route); i++ {
		start, err := domain.FindPoint(points, route[i])
		if err != nil {
			return 0, fmt.Errorf("route distance: leg %d start: %w", i+1, err)
		}

		end, err := domain.FindPoint(points, route[i+1])
		if err != nil {
			return 0, fmt.Errorf("route distance: leg %d end: %w", i+1, err)
		}

		total += Distance(start, end)
	}

	return total, nil
}
