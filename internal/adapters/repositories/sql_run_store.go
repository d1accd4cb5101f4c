package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"migros-delivery/internal/domain"
	"migros-delivery/internal/platform/obs"
	"migros-delivery/internal/ports"
)

// SQLRunStore is a Postgres-backed RunStore (pgx stdlib driver).
type SQLRunStore struct {
	DB *sql.DB
}

func NewSQLRunStore(db *sql.DB) *SQLRunStore {
	return &SQLRunStore{DB: db}
}

// Create the route_runs table on Postgres.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init sql schema: DB is nil")
	}

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS route_runs (
			run_id BIGSERIAL PRIMARY KEY,
			fingerprint TEXT NOT NULL,
			route INTEGER[] NOT NULL,
			distance DOUBLE PRECISION NOT NULL,
			point_count INTEGER NOT NULL,
			planned_at TIMESTAMPTZ NOT NULL
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_route_runs_fingerprint
		ON route_runs(fingerprint);
		`,
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init sql schema: exec statement #%d: %w", i+1, err)
		}
	}

	return nil
}

// Append a served plan to the run history. An empty route is rejected.
func (s *SQLRunStore) SaveRun(ctx context.Context, plan *domain.RoutePlan) (err error) {
	defer obs.Time(ctx, "runs.sql.SaveRun")(&err)

	if s.DB == nil {
		return errors.New("sql run store: db is nil")
	}
	if plan == nil {
		return errors.New("save run: plan is nil")
	}

	q := `
	INSERT INTO route_runs (fingerprint, route, distance, point_count, planned_at)
    VALUES ($1, $2::integer[], $3, $4, $5);
	`

	route, err := pgIntArray(plan.Route)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, q, plan.Fingerprint, route, plan.Distance, len(plan.Points), plan.PlannedAt); err != nil {
		return fmt.Errorf("save run: insert route_runs: %w", err)
	}

	return nil
}

// Return the most recent runs, newest first. limit <= 0 returns all.
func (s *SQLRunStore) ListRuns(ctx context.Context, limit int) (_ []ports.RunRecord, err error) {
	defer obs.Time(ctx, "runs.sql.ListRuns")(&err)

	if s.DB == nil {
		return nil, errors.New("sql run store: db is nil")
	}

	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	q := `
	SELECT run_id, fingerprint, array_to_json(route)::text, distance, point_count, planned_at
    FROM route_runs
    ORDER BY run_id DESC
    LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, q, limitArg)
	if err != nil {
		return nil, fmt.Errorf("list runs: query route_runs table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.RunRecord, 0)
	for rows.Next() {
		var (
			rec   ports.RunRecord
			route string
		)
		if err := rows.Scan(&rec.RunID, &rec.Fingerprint, &route, &rec.Distance, &rec.PointCount, &rec.PlannedAt); err != nil {
			return nil, fmt.Errorf("list runs: scan rows: %w", err)
		}

		if rec.Route, err = decodeRoute(route); err != nil {
			return nil, fmt.Errorf("list runs: run_id=%d: %w", rec.RunID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return out, nil
}
