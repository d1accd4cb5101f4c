package repositories

import (
	"context"
	"database/sql"
	"migros-delivery/internal/domain"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(context.Background(), db))
	return db
}

func TestInitSchemaIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, InitSchema(context.Background(), db))
	require.Error(t, InitSchema(context.Background(), nil))
}

func TestSeedAndListPoints(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	points := []domain.Point{
		{ID: 1, X: 0.5, Y: 0.5},
		{ID: 2, X: 0.1, Y: 0.9},
		{ID: 3, X: 0, Y: 1},
	}
	require.NoError(t, SeedPoints(ctx, db, points))

	repo := NewSqlitePointRepository(db)
	got, err := repo.ListPoints(ctx)
	require.NoError(t, err)
	require.Equal(t, points, got)

	// Reseeding replaces previous content.
	require.NoError(t, SeedPoints(ctx, db, points[:1]))
	got, err = repo.ListPoints(ctx)
	require.NoError(t, err)
	require.Equal(t, points[:1], got)

	require.Error(t, SeedPoints(ctx, db, []domain.Point{{ID: 0}}))
}

func TestSeedFromFile(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	path := filepath.Join(t.TempDir(), "input01.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,0\n0,0,Migros\n1,1\n"), 0o644))

	n, err := SeedFromFile(ctx, db, path)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	got, err := NewSqlitePointRepository(db).ListPoints(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Point{ID: 1, X: 0, Y: 0}, got[0])

	_, err = SeedFromFile(ctx, db, filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, domain.ErrIO)
}

func TestSqliteRunStore(t *testing.T) {
	ctx := context.Background()
	store := NewSqliteRunStore(openTestDB(t))
	at := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.SaveRun(ctx, &domain.RoutePlan{
			Points:      []domain.Point{{ID: 1}, {ID: 2, X: 1}},
			Route:       domain.Route{1, 2, 1},
			Distance:    float64(i),
			Fingerprint: "fp",
			PlannedAt:   at.Add(time.Duration(i) * time.Minute),
		}))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, 3.0, runs[0].Distance)
	require.Equal(t, domain.Route{1, 2, 1}, runs[0].Route)
	require.Equal(t, 2, runs[0].PointCount)
	require.True(t, runs[0].PlannedAt.Equal(at.Add(3*time.Minute)))

	all, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	require.Error(t, store.SaveRun(ctx, nil))
}

func TestRouteCodec(t *testing.T) {
	s, err := encodeRoute(domain.Route{1, 3, 2, 1})
	require.NoError(t, err)
	require.Equal(t, "[1,3,2,1]", s)

	r, err := decodeRoute(s)
	require.NoError(t, err)
	require.Equal(t, domain.Route{1, 3, 2, 1}, r)

	_, err = decodeRoute("nope")
	require.Error(t, err)

	_, err = encodeRoute(nil)
	require.ErrorIs(t, err, errEmptyRoute)
}

func TestPgIntArray(t *testing.T) {
	s, err := pgIntArray(domain.Route{1, 3, 2, 1})
	require.NoError(t, err)
	require.Equal(t, "{1,3,2,1}", s)

	s, err = pgIntArray(domain.Route{1, 1})
	require.NoError(t, err)
	require.Equal(t, "{1,1}", s)

	for _, r := range []domain.Route{nil, {}} {
		_, err := pgIntArray(r)
		require.ErrorIs(t, err, errEmptyRoute)
	}
}

func TestSaveRunRejectsEmptyRoute(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	store := NewSqliteRunStore(db)
	err := store.SaveRun(ctx, &domain.RoutePlan{Fingerprint: "f"})
	require.ErrorIs(t, err, errEmptyRoute)

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, runs)

	err = NewSQLRunStore(db).SaveRun(ctx, &domain.RoutePlan{Fingerprint: "f"})
	require.ErrorIs(t, err, errEmptyRoute)
}
