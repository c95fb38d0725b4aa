package internal

import "github.com/pkg/errors"

// Every error returned by this package wraps exactly one of these, so callers
// can match with errors.Is (or errors.Cause) regardless of the context added.
var (
	ErrInvalidGeometry    = errors.New("invalid geometry")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrNotATriangle       = errors.New("figure is not a triangle")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
