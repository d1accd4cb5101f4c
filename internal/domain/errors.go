package domain

import "errors"

var (
	// ErrInvalidInput reports a point collection the route builder cannot use.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound reports an identifier with no matching point.
	ErrNotFound = errors.New("not found")
	// ErrParse reports malformed point data.
	ErrParse = errors.New("parse error")
	// ErrIO reports an unreadable point source.
	ErrIO = errors.New("io error")
)
