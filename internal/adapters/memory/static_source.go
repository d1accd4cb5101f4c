package memory

import (
	"context"
	"migros-delivery/internal/domain"
	"slices"
)

// StaticPointSource serves a fixed point collection.
// Useful for tests and for planning over points already parsed in-process.
type StaticPointSource struct {
	points []domain.Point
	err    error
}

func NewStaticPointSource(points []domain.Point) *StaticPointSource {
	return &StaticPointSource{points: slices.Clone(points)}
}

// NewFailingPointSource returns a source whose ListPoints always fails with err.
func NewFailingPointSource(err error) *StaticPointSource {
	return &StaticPointSource{err: err}
}

func (s *StaticPointSource) ListPoints(ctx context.Context) ([]domain.Point, error) {
	if s.err != nil {
		return nil, s.err
	}
	return slices.Clone(s.points), nil
}
