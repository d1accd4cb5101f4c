package ports

import (
	"context"
	"migros-delivery/internal/domain"
)

// Contract for caching computed plans by point-collection fingerprint.
type PlanCache interface {
	// Return the cached plan, or (nil, nil) on a miss.
	Get(ctx context.Context, fingerprint string) (*domain.RoutePlan, error)
	// Store a plan under its fingerprint.
	Put(ctx context.Context, plan *domain.RoutePlan) error
}
