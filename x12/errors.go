package x12

import "errors"

var (
	// ErrNoSuchSegment is returned when a required segment is missing.
	ErrNoSuchSegment = errors.New("no such segment")
	// ErrNoSuchField is returned when a required field of a segment is missing.
	ErrNoSuchField = errors.New("no such field")
)
