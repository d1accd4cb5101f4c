package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"migros-delivery/internal/domain"
	"migros-delivery/internal/ports"
	"time"
)

// SQLite-backed implementation of the RunStore port.
type SqliteRunStore struct{ DB *sql.DB }

func NewSqliteRunStore(db *sql.DB) *SqliteRunStore {
	return &SqliteRunStore{DB: db}
}

// Append a served plan to the run history. An empty route is rejected.
func (s *SqliteRunStore) SaveRun(ctx context.Context, plan *domain.RoutePlan) error {
	if s.DB == nil {
		return errors.New("sqlite run store: DB is nil")
	}
	if plan == nil {
		return errors.New("save run: plan is nil")
	}

	route, err := encodeRoute(plan.Route)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	query := `
	INSERT INTO route_runs (
		fingerprint,
		route,
		distance,
		point_count,
		planned_at
	)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		plan.Fingerprint,
		route,
		plan.Distance,
		len(plan.Points),
		plan.PlannedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save run: insert route_runs: %w", err)
	}

	return nil
}

// Return the most recent runs, newest first. limit <= 0 returns all.
func (s *SqliteRunStore) ListRuns(ctx context.Context, limit int) ([]ports.RunRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite run store: DB is nil")
	}
	if limit <= 0 {
		limit = -1
	}

	query := `
	SELECT
		run_id,
		fingerprint,
		route,
		distance,
		point_count,
		planned_at
	FROM route_runs
	ORDER BY run_id DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query route_runs table: %w", err)
	}
	defer rows.Close()

	runs := make([]ports.RunRecord, 0)
	for rows.Next() {
		var (
			rec       ports.RunRecord
			route     string
			plannedAt string
		)
		if err := rows.Scan(&rec.RunID, &rec.Fingerprint, &route, &rec.Distance, &rec.PointCount, &plannedAt); err != nil {
			return nil, fmt.Errorf("list runs: scan row: %w", err)
		}

		if rec.Route, err = decodeRoute(route); err != nil {
			return nil, fmt.Errorf("list runs: run_id=%d: %w", rec.RunID, err)
		}

		if rec.PlannedAt, err = time.Parse(time.RFC3339Nano, plannedAt); err != nil {
			return nil, fmt.Errorf("list runs: run_id=%d: parse planned_at: %w", rec.RunID, err)
		}

		runs = append(runs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return runs, nil
}
