package ports

import (
	"context"
	"migros-delivery/internal/domain"
	"time"
)

// Summary of a persisted planning run.
type RunRecord struct {
	RunID       int64
	Fingerprint string
	Route       domain.Route
	Distance    float64
	PointCount  int
	PlannedAt   time.Time
}

// Port: append-only history of computed plans.
type RunStore interface {
	SaveRun(ctx context.Context, plan *domain.RoutePlan) error
	// Return the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
}
