package cache

import (
	"context"
	"migros-delivery/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisPlanCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPlanCache(client, ttl), mr
}

func TestRedisPlanCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Minute)

	miss, err := c.Get(ctx, "fp-1")
	require.NoError(t, err)
	require.Nil(t, miss)

	plan := &domain.RoutePlan{
		Points:      []domain.Point{{ID: 1}, {ID: 2, X: 0.5, Y: 0.5}},
		Route:       domain.Route{1, 2, 1},
		Distance:    1.4142135623730951,
		Fingerprint: "fp-1",
		PlannedAt:   time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.Put(ctx, plan))

	got, err := c.Get(ctx, "fp-1")
	require.NoError(t, err)
	require.Equal(t, plan.Points, got.Points)
	require.Equal(t, plan.Route, got.Route)
	require.Equal(t, plan.Distance, got.Distance)
	require.Equal(t, plan.Fingerprint, got.Fingerprint)
	require.True(t, plan.PlannedAt.Equal(got.PlannedAt))
}

func TestRedisPlanCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, c.Put(ctx, &domain.RoutePlan{Fingerprint: "fp", Route: domain.Route{1, 1}}))
	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, "fp")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRedisPlanCacheErrors(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, 0)

	_, err := c.Get(ctx, " ")
	require.Error(t, err)
	require.Error(t, c.Put(ctx, nil))
	require.Error(t, c.Put(ctx, &domain.RoutePlan{}))

	require.NoError(t, mr.Set(keyPrefix+"bad", "not json"))
	_, err = c.Get(ctx, "bad")
	require.Error(t, err)

	mr.Close()
	_, err = c.Get(ctx, "fp")
	require.Error(t, err)

	_, err = (&RedisPlanCache{}).Get(ctx, "fp")
	require.Error(t, err)
}
