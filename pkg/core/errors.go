package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidOperation is returned when an action is not permitted in the
	// current playback phase.
	ErrInvalidOperation = errors.New("invalid operation")
)
