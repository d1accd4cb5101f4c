package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"migros-delivery/internal/domain"
	"migros-delivery/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "migros:plan:"

type cachedPlan struct {
	Points    []domain.Point `json:"points"`
	Route     []int          `json:"route"`
	Distance  float64        `json:"distance"`
	PlannedAt time.Time      `json:"planned_at"`
}

// RedisPlanCache stores computed plans in Redis keyed by fingerprint.
// Entries expire after TTL; zero TTL keeps them until evicted.
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

// Fetch a cached plan. A missing key is a miss, not an error.
func (c *RedisPlanCache) Get(ctx context.Context, fingerprint string) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	if c.Client == nil {
		return nil, errors.New("plan cache: client is nil")
	}

	fingerprint = strings.TrimSpace(fingerprint)
	if fingerprint == "" {
		return nil, errors.New("get plan cache: fingerprint must not be empty")
	}

	raw, err := c.Client.Get(ctx, keyPrefix+fingerprint).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get plan cache: %w", err)
	}

	var cp cachedPlan
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, fmt.Errorf("get plan cache: decode %q: %w", fingerprint, err)
	}

	return &domain.RoutePlan{
		Points:      cp.Points,
		Route:       domain.Route(cp.Route),
		Distance:    cp.Distance,
		Fingerprint: fingerprint,
		PlannedAt:   cp.PlannedAt,
	}, nil
}

// Store a plan under its fingerprint.
func (c *RedisPlanCache) Put(ctx context.Context, plan *domain.RoutePlan) (err error) {
	defer obs.Time(ctx, "plan.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}
	if plan == nil {
		return errors.New("insert plan cache: plan is nil")
	}
	if strings.TrimSpace(plan.Fingerprint) == "" {
		return errors.New("insert plan cache: fingerprint must not be empty")
	}

	payload, err := json.Marshal(cachedPlan{
		Points:    plan.Points,
		Route:     []int(plan.Route),
		Distance:  plan.Distance,
		PlannedAt: plan.PlannedAt,
	})
	if err != nil {
		return fmt.Errorf("insert plan cache: encode: %w", err)
	}

	if err := c.Client.Set(ctx, keyPrefix+plan.Fingerprint, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert plan cache fingerprint=%q: %w", plan.Fingerprint, err)
	}

	return nil
}
