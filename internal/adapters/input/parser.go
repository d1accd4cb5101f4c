package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"migros-delivery/internal/domain"
	"strconv"
	"strings"
)

// DepotMarker tags the depot line in the text format. Matching ignores case.
const DepotMarker = "Migros"

// Parsed is the normalized result of reading a point source.
// Points holds the depot first with ID 1; Warnings lists recoverable
// oddities in the input (extra or missing depot markers).
type Parsed struct {
	Points   []domain.Point
	Warnings []string
}

type record struct {
	line  int
	x, y  float64
	depot bool
}

// ParseText reads the line format "x,y" or "x,y,Migros".
// Blank lines are skipped. name is used in error messages only.
func ParseText(r io.Reader, name string) (Parsed, error) {
	sc := bufio.NewScanner(r)

	records := make([]record, 0, 64)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		rec, err := parseLine(text)
		if err != nil {
			return Parsed{}, &ParseError{Path: name, Line: lineNo, Text: text, Err: err}
		}
		rec.line = lineNo
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return Parsed{}, &IOError{Path: name, Err: err}
	}

	return normalize(records), nil
}

func parseLine(text string) (record, error) {
	parts := strings.Split(text, ",")
	if len(parts) < 2 {
		return record{}, errors.New("expected at least two comma-separated fields")
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return record{}, fmt.Errorf("x coordinate: %w", err)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return record{}, fmt.Errorf("y coordinate: %w", err)
	}

	depot := len(parts) > 2 && strings.EqualFold(strings.TrimSpace(parts[2]), DepotMarker)

	return record{x: x, y: y, depot: depot}, nil
}

// normalize picks the depot and assigns identifiers: depot = 1, all other
// records 2..n in input order.
func normalize(records []record) Parsed {
	if len(records) == 0 {
		return Parsed{Points: []domain.Point{}}
	}

	var warnings []string

	depotIdx := -1
	for i, rec := range records {
		if !rec.depot {
			continue
		}
		if depotIdx >= 0 {
			warnings = append(warnings, fmt.Sprintf(
				"depot marker on line %d overrides line %d; line %d is kept as a building",
				rec.line, records[depotIdx].line, records[depotIdx].line,
			))
		}
		depotIdx = i
	}

	if depotIdx < 0 {
		depotIdx = 0
		warnings = append(warnings, fmt.Sprintf("no depot marker; using line %d as depot", records[0].line))
	}

	points := make([]domain.Point, 0, len(records))
	depot := records[depotIdx]
	points = append(points, domain.Point{ID: domain.DepotID, X: depot.x, Y: depot.y})

	nextID := domain.DepotID + 1
	for i, rec := range records {
		if i == depotIdx {
			continue
		}
		points = append(points, domain.Point{ID: nextID, X: rec.x, Y: rec.y})
		nextID++
	}

	return Parsed{Points: points, Warnings: warnings}
}

// Write serializes points in the line format. Points are written in slice
// order; the point carrying domain.DepotID gets the depot marker.
func Write(w io.Writer, points []domain.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		line := strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
		if p.ID == domain.DepotID {
			line += "," + DepotMarker
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write points: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write points: flush: %w", err)
	}
	return nil
}
