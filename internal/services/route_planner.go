package services

import (
	"context"
	"errors"
	"fmt"
	"migros-delivery/internal/domain"
	"migros-delivery/internal/platform/obs"
	"migros-delivery/internal/ports"
	"time"

	"github.com/rs/zerolog"
)

// BuildPlan computes the nearest-neighbor tour and its length for a fixed
// point collection. It has no side effects.
func BuildPlan(points []domain.Point, plannedAt time.Time) (*domain.RoutePlan, error) {
	route, err := NearestNeighborRoute(points)
	if err != nil {
		return nil, fmt.Errorf("build plan: %w", err)
	}

	distance, err := RouteDistance(route, points)
	if err != nil {
		return nil, fmt.Errorf("build plan: %w", err)
	}

	return &domain.RoutePlan{
		Points:      points,
		Route:       route,
		Distance:    distance,
		Fingerprint: domain.Fingerprint(points),
		PlannedAt:   plannedAt,
	}, nil
}

// Planner loads points from a source and produces a RoutePlan.
//
// Cache and Runs are optional. Failures writing to them are logged and do
// not fail the plan; a failing cache read is treated as a miss. Every plan
// served, cached or freshly computed, is appended to Runs.
type Planner struct {
	Source ports.PointSource
	Cache  ports.PlanCache
	Runs   ports.RunStore
	Now    func() time.Time
}

func NewPlanner(source ports.PointSource, cache ports.PlanCache, runs ports.RunStore) *Planner {
	return &Planner{
		Source: source,
		Cache:  cache,
		Runs:   runs,
		Now:    time.Now,
	}
}

// Plan computes (or reuses) the tour for the source's current points.
func (p *Planner) Plan(ctx context.Context) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "route.Plan")(&err)

	if p.Source == nil {
		return nil, errors.New("plan: point source is nil")
	}

	log := zerolog.Ctx(ctx)

	points, err := p.Source.ListPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan: list points: %w", err)
	}

	fingerprint := domain.Fingerprint(points)

	// Reuse a previously computed tour for an identical collection.
	if p.Cache != nil {
		cached, err := p.Cache.Get(ctx, fingerprint)
		if err != nil {
			log.Warn().Err(err).Str("fingerprint", fingerprint).Msg("plan cache read failed")
		} else if cached != nil {
			log.Debug().Str("fingerprint", fingerprint).Msg("plan cache hit")
			p.recordRun(ctx, cached)
			return cached, nil
		}
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	plan, err := BuildPlan(points, now().UTC())
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}

	if p.Cache != nil {
		if err := p.Cache.Put(ctx, plan); err != nil {
			log.Warn().Err(err).Str("fingerprint", fingerprint).Msg("plan cache write failed")
		}
	}

	p.recordRun(ctx, plan)
	return plan, nil
}

func (p *Planner) recordRun(ctx context.Context, plan *domain.RoutePlan) {
	if p.Runs == nil {
		return
	}
	if err := p.Runs.SaveRun(ctx, plan); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("fingerprint", plan.Fingerprint).Msg("run store write failed")
	}
}
