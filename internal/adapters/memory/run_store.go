package memory

import (
	"context"
	"errors"
	"migros-delivery/internal/domain"
	"migros-delivery/internal/ports"
	"slices"
	"sync"
)

// RunStore keeps run history in memory, newest last.
type RunStore struct {
	mu   sync.Mutex
	runs []ports.RunRecord
}

func NewRunStore() *RunStore {
	return &RunStore{}
}

func (s *RunStore) SaveRun(ctx context.Context, plan *domain.RoutePlan) error {
	if plan == nil {
		return errors.New("memory run store: plan is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = append(s.runs, ports.RunRecord{
		RunID:       int64(len(s.runs) + 1),
		Fingerprint: plan.Fingerprint,
		Route:       slices.Clone(plan.Route),
		Distance:    plan.Distance,
		PointCount:  len(plan.Points),
		PlannedAt:   plan.PlannedAt,
	})
	return nil
}

func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]ports.RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ports.RunRecord, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, s.runs[i])
	}
	return out, nil
}
