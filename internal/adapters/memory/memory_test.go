package memory

import (
	"context"
	"errors"
	"migros-delivery/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStaticPointSourceReturnsCopy(t *testing.T) {
	src := NewStaticPointSource([]domain.Point{{ID: 1}, {ID: 2, X: 1}})

	pts, err := src.ListPoints(context.Background())
	require.NoError(t, err)
	pts[0].X = 42

	again, err := src.ListPoints(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.0, again[0].X)
}

func TestFailingPointSource(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewFailingPointSource(boom).ListPoints(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestPlanCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewPlanCache()

	miss, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.Nil(t, miss)

	plan := &domain.RoutePlan{Fingerprint: "abc", Route: domain.Route{1, 1}}
	require.NoError(t, c.Put(ctx, plan))

	hit, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.Same(t, plan, hit)
	require.Equal(t, 1, c.Hits)

	require.Error(t, c.Put(ctx, nil))
}

func TestRunStoreNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewRunStore()
	at := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.SaveRun(ctx, &domain.RoutePlan{
			Points:    []domain.Point{{ID: 1}},
			Route:     domain.Route{1, 1},
			Distance:  float64(i),
			PlannedAt: at,
		}))
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, int64(3), runs[0].RunID)
	require.Equal(t, int64(2), runs[1].RunID)
	require.Equal(t, 1, runs[0].PointCount)

	all, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}
