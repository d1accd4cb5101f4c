package services

import (
	"fmt"
	"math"
	"migros-delivery/internal/domain"
	"slices"
)

// Build a closed delivery tour using a greedy nearest-neighbor algorithm.
//
// The tour starts at points[0] (the depot), repeatedly moves to the closest
// unvisited point and finally returns to the depot. It does not attempt
// global optimization. When two candidates are equidistant the lower
// identifier wins, so equal inputs always yield equal routes.
//
// A collection holding only the depot yields [depot, depot].
func NearestNeighborRoute(points []domain.Point) (domain.Route, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("plan route: points must be non-empty: %w", domain.ErrInvalidInput)
	}

	seen := make(map[int]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("plan route: duplicate point id=%d: %w", p.ID, domain.ErrInvalidInput)
		}
		seen[p.ID] = struct{}{}
	}

	current := points[0]
	remaining := slices.Clone(points[1:])

	route := make(domain.Route, 0, len(points)+1)
	route = append(route, current.ID)

	for len(remaining) > 0 {
		best := -1
		minDistance := math.Inf(1)

		// Select next stop by minimum straight-line distance (greedy step).
		for i, p := range remaining {
			d := Distance(current, p)
			if best == -1 || d < minDistance || (d == minDistance && p.ID < remaining[best].ID) {
				minDistance = d
				best = i
			}
		}

		current = remaining[best]
		route = append(route, current.ID)
		remaining = slices.Delete(remaining, best, best+1)
	}

	// Close the tour with the return leg to the depot.
	route = append(route, points[0].ID)

	return route, nil
}
