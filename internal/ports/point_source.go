package ports

import (
	"context"
	"migros-delivery/internal/domain"
)

// Port: a boundary for retrieving the point collection to route over.
// Implementations return the depot first with ID 1 and the remaining
// points numbered 2..n.
type PointSource interface {
	// Retrieve all points available for routing.
	ListPoints(ctx context.Context) ([]domain.Point, error)
}
