package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ordered closed tour of point identifiers.
// A valid Route starts and ends with the depot and visits every other
// point exactly once in between.
type Route []int

// String renders the route as "[1, 2, 3, 1]".
func (r Route) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range r {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteByte(']')
	return b.String()
}

// Validate checks the closed-tour invariants against the point collection
// the route was built from.
func (r Route) Validate(points []Point) error {
	if len(points) == 0 {
		return fmt.Errorf("validate route: no points: %w", ErrInvalidInput)
	}
	if len(r) != len(points)+1 {
		return fmt.Errorf("validate route: length %d, want %d: %w", len(r), len(points)+1, ErrInvalidInput)
	}
	if r[0] != r[len(r)-1] {
		return fmt.Errorf("validate route: starts at %d but ends at %d: %w", r[0], r[len(r)-1], ErrInvalidInput)
	}

	seen := make(map[int]struct{}, len(r))
	for _, id := range r[:len(r)-1] {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("validate route: id=%d visited twice: %w", id, ErrInvalidInput)
		}
		if _, err := FindPoint(points, id); err != nil {
			return fmt.Errorf("validate route: %w", err)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// Represents one computed delivery tour.
// A RoutePlan is the output of the route builder together with the point
// collection it references. It is immutable planning data.
type RoutePlan struct {
	Points      []Point
	Route       Route
	Distance    float64
	Fingerprint string
	PlannedAt   time.Time
}

// Depot returns the point the tour starts and ends at.
func (p *RoutePlan) Depot() (Point, error) {
	if len(p.Route) == 0 {
		return Point{}, fmt.Errorf("route plan depot: empty route: %w", ErrInvalidInput)
	}
	return FindPoint(p.Points, p.Route[0])
}
