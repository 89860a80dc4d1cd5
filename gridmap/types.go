// Package gridmap defines core types, connectivity modes and sentinel errors
// for the gridmap package of github.com/katalvlaran/pathgrid.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrInvalidGrid indicates a malformed terrain grid. Every construction
	// failure matches it via errors.Is.
	ErrInvalidGrid = errors.New("gridmap: invalid grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrOutOfBounds indicates a cell outside the map dimensions.
	ErrOutOfBounds = errors.New("gridmap: cell out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, E, S, W, then NE, SE, SW, NW.
	Conn8
)

// Cell is a grid coordinate. X indexes columns, Y indexes rows.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by the offset d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Diagonal reports whether the offset c moves along both axes.
func (c Cell) Diagonal() bool {
	return c.X != 0 && c.Y != 0
}

// GridMap is an immutable terrain map. It is safe for concurrent use by any
// number of readers once New returns.
type GridMap struct {
	width, height int
	codes         []uint8 // row-major: codes[y*width+x]
}

// BoundsError reports a query whose start or goal lies outside the map.
// It matches ErrOutOfBounds via errors.Is.
type BoundsError struct {
	Width, Height int
	Start, Goal   Cell
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: start %v goal %v outside %dx%d map",
		ErrOutOfBounds, e.Start, e.Goal, e.Width, e.Height)
}

// Unwrap exposes ErrOutOfBounds to errors.Is.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
