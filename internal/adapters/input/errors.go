package input

import (
	"fmt"
	"migros-delivery/internal/domain"
)

// ParseError reports a malformed point record.
// Line is 1-based; zero means the position is unknown.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s line %d %q: %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{domain.ErrParse, e.Err} }

// IOError reports a point source that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{domain.ErrIO, e.Err} }
