package input

import (
	"context"
	"fmt"
	"migros-delivery/internal/domain"
	"migros-delivery/internal/platform/obs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// FileSource reads points from a file on every ListPoints call.
// The format is chosen by extension: .json and .json5 are decoded as JSON5,
// everything else as the line format.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// ReadFile opens, parses and closes path.
func ReadFile(path string) (Parsed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Parsed{}, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		return ParseJSON(f, path)
	default:
		return ParseText(f, path)
	}
}

func (s *FileSource) ListPoints(ctx context.Context) (_ []domain.Point, err error) {
	defer obs.Time(ctx, "input.ListPoints")(&err)

	if strings.TrimSpace(s.Path) == "" {
		return nil, fmt.Errorf("file source: path is empty: %w", domain.ErrInvalidInput)
	}

	parsed, err := ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	log := zerolog.Ctx(ctx)
	for _, w := range parsed.Warnings {
		log.Warn().Str("path", s.Path).Msg(w)
	}
	log.Debug().Str("path", s.Path).Int("points", len(parsed.Points)).Msg("points loaded")

	return parsed.Points, nil
}
