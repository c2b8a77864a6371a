package gridgraph

import "errors"

var (
	// ErrEmptyGrid reports a mask without rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: empty mask")
	// ErrNonRectangular reports rows of different lengths.
	ErrNonRectangular = errors.New("gridgraph: ragged mask rows")
	// ErrComponentIndex reports an island index outside [0, count).
	ErrComponentIndex = errors.New("gridgraph: island index out of range")
	// ErrNoPath reports two islands that no cell chain can join.
	ErrNoPath = errors.New("gridgraph: islands cannot be joined")
	// ErrNoLand reports a mask without land cells.
	ErrNoLand = errors.New("gridgraph: mask has no land")
)
