package input

import (
	"errors"
	"fmt"
	"io"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

type jsonPoint struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Depot bool     `json:"depot"`
}

// ParseJSON reads a JSON or JSON5 array of {"x":..,"y":..,"depot":bool}.
// Depot and identifier rules match ParseText; record positions stand in
// for line numbers.
func ParseJSON(r io.Reader, name string) (Parsed, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Parsed{}, &IOError{Path: name, Err: err}
	}

	var items []jsonPoint
	if err := json5.Unmarshal(data, &items); err != nil {
		return Parsed{}, &ParseError{Path: name, Err: fmt.Errorf("decode json: %w", err)}
	}

	records := make([]record, 0, len(items))
	for i, item := range items {
		if item.X == nil || item.Y == nil {
			return Parsed{}, &ParseError{
				Path: name,
				Line: i + 1,
				Text: fmt.Sprintf("record #%d", i+1),
				Err:  errors.New("missing x or y"),
			}
		}
		records = append(records, record{line: i + 1, x: *item.X, y: *item.Y, depot: item.Depot})
	}

	return normalize(records), nil
}
