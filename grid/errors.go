package grid

import "errors"

// Sentinel errors shared by the grid and every codec built on it.
var (
	// ErrInvalidOrder indicates an order outside [1, MaxOrder].
	ErrInvalidOrder = errors.New("grid: order must be in [1, MaxOrder]")
	// ErrCoordinateOutOfRange indicates a coordinate that is not a cell of the grid.
	ErrCoordinateOutOfRange = errors.New("grid: coordinate out of range")
	// ErrIndexOutOfRange indicates a curve index ≥ 4^order.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
)
