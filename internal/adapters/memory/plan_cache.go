package memory

import (
	"context"
	"errors"
	"migros-delivery/internal/domain"
	"sync"
)

// PlanCache is an in-process cache of plans keyed by fingerprint.
// It is safe for concurrent use.
type PlanCache struct {
	mu    sync.Mutex
	plans map[string]*domain.RoutePlan
	Hits  int
}

func NewPlanCache() *PlanCache {
	return &PlanCache{plans: make(map[string]*domain.RoutePlan)}
}

func (c *PlanCache) Get(ctx context.Context, fingerprint string) (*domain.RoutePlan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	plan, ok := c.plans[fingerprint]
	if !ok {
		return nil, nil
	}
	c.Hits++
	return plan, nil
}

func (c *PlanCache) Put(ctx context.Context, plan *domain.RoutePlan) error {
	if plan == nil {
		return errors.New("memory plan cache: plan is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans[plan.Fingerprint] = plan
	return nil
}
