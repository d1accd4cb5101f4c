package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"migros-delivery/internal/adapters/input"
	"migros-delivery/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPointsQuery := `
	CREATE TABLE IF NOT EXISTS points (
		point_id INTEGER PRIMARY KEY,
		x REAL NOT NULL,
		y REAL NOT NULL
	);
	`

	createRouteRunsQuery := `
	CREATE TABLE IF NOT EXISTS route_runs (
        run_id INTEGER PRIMARY KEY AUTOINCREMENT,
        fingerprint TEXT NOT NULL,
        route TEXT NOT NULL,
        distance REAL NOT NULL,
        point_count INTEGER NOT NULL,
        planned_at TEXT NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_runs_fingerprint
    ON route_runs(fingerprint);
	`

	statements := []string{
		createPointsQuery,
		createRouteRunsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the points table content with the given collection.
func SeedPoints(ctx context.Context, db *sql.DB, points []domain.Point) error {
	if db == nil {
		return errors.New("seed points: DB is nil")
	}

	for i, p := range points {
		if p.ID <= 0 {
			return fmt.Errorf("seed points: invalid point_id at index %d: %d", i+1, p.ID)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed points: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM points;`); err != nil {
		return fmt.Errorf("seed points: clear table: %w", err)
	}

	query := `
	INSERT INTO points (
		point_id,
		x,
		y
	)
	VALUES (?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed points: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.ID, p.X, p.Y); err != nil {
			return fmt.Errorf("seed points: insert point_id=%d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed points: commit tx: %w", err)
	}

	return nil
}

// Populate the points table from an input file (text or JSON5).
func SeedFromFile(ctx context.Context, db *sql.DB, path string) (int, error) {
	parsed, err := input.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("seed points: %w", err)
	}

	if err := SeedPoints(ctx, db, parsed.Points); err != nil {
		return 0, err
	}

	return len(parsed.Points), nil
}
