package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is built with a non-positive row or column count
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a cell access falls outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrUnknownPattern is returned when seeding with a pattern name that is not registered
	ErrUnknownPattern = errors.New("unknown pattern")
)
