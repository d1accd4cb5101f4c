package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"migros-delivery/internal/domain"
)

// SQLite-backed implementation of the PointSource port.
type SqlitePointRepository struct{ DB *sql.DB }

func NewSqlitePointRepository(db *sql.DB) *SqlitePointRepository {
	return &SqlitePointRepository{DB: db}
}

// Return all points stored in the database, depot first.
func (s *SqlitePointRepository) ListPoints(ctx context.Context) ([]domain.Point, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite point repository: DB is nil")
	}

	query := `
	SELECT
		point_id,
		x,
		y
	FROM points
	ORDER BY point_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list points: query points table: %w", err)
	}
	defer rows.Close()

	points := make([]domain.Point, 0, 64)
	for rows.Next() {
		var p domain.Point
		if err := rows.Scan(&p.ID, &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("list points: scan row: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list points: row iteration: %w", err)
	}

	return points, nil
}
