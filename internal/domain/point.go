package domain

import "fmt"

// Immutable building location on the normalized delivery plane.
// X and Y are expected in [0,1] but are not validated.
type Point struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// The depot always carries this identifier after parsing.
const DepotID = 1

// FindPoint returns the point with the given identifier.
// A miss is reported as ErrNotFound rather than a zero Point.
func FindPoint(points []Point, id int) (Point, error) {
	for _, p := range points {
		if p.ID == id {
			return p, nil
		}
	}
	return Point{}, fmt.Errorf("find point id=%d: %w", id, ErrNotFound)
}
