package registry

import (
	"errors"

	"github.com/katalvlaran/pathgrid/gridmap"
)

// Sentinel errors returned by Registry methods. Callers branch with errors.Is.
var (
	// ErrNotLoaded indicates a query against a slot that was never loaded.
	// Named lookups wrap it with the key.
	ErrNotLoaded = errors.New("registry: map not loaded")

	// ErrInternal indicates a poisoned slot or a recovered panic.
	ErrInternal = errors.New("registry: internal failure")

	// ErrInvalidGrid is gridmap.ErrInvalidGrid, re-exported for callers that
	// only import this package.
	ErrInvalidGrid = gridmap.ErrInvalidGrid

	// ErrOutOfBounds is gridmap.ErrOutOfBounds; the concrete error is a
	// *gridmap.BoundsError carrying the map width and height.
	ErrOutOfBounds = gridmap.ErrOutOfBounds
)
