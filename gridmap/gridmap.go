package gridmap

import "fmt"

// Neighbor offsets, straight moves first. Order is part of the search
// determinism contract: searches expand neighbors in exactly this order.
var (
	offsets4 = []Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// New constructs a GridMap from a non-empty, rectangular 2D slice of terrain
// codes. The input is copied, so later mutation by the caller has no effect.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from row 0.
// Both match ErrInvalidGrid. Nothing is partially accepted.
// Complexity: O(W×H) time and memory.
func New(rows [][]uint8) (*GridMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrNonRectangular, y, len(row), w)
		}
	}
	codes := make([]uint8, 0, w*h)
	for _, row := range rows {
		codes = append(codes, row...)
	}

	return &GridMap{width: w, height: h, codes: codes}, nil
}

// Width returns the number of columns.
func (m *GridMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *GridMap) Height() int { return m.height }

// Len returns the number of cells (Width×Height).
func (m *GridMap) Len() int { return len(m.codes) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (m *GridMap) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// IndexOf maps c to its row-major index y*Width + x.
// c must be in bounds.
func (m *GridMap) IndexOf(c Cell) int {
	return c.Y*m.width + c.X
}

// CellOf converts a row-major index back to its cell.
func (m *GridMap) CellOf(i int) Cell {
	return Cell{X: i % m.width, Y: i / m.width}
}

// Code returns the raw terrain code at row-major index i without bounds
// checking. Searches use it after their own InBounds checks.
func (m *GridMap) Code(i int) uint8 {
	return m.codes[i]
}

// TerrainAt returns the raw terrain code at c.
// Returns a *BoundsError if c is outside the map.
func (m *GridMap) TerrainAt(c Cell) (uint8, error) {
	if !m.InBounds(c) {
		return 0, &BoundsError{Width: m.width, Height: m.height, Start: c, Goal: c}
	}

	return m.codes[m.IndexOf(c)], nil
}

// CheckBounds returns a *BoundsError when either start or goal is outside the map.
func (m *GridMap) CheckBounds(start, goal Cell) error {
	if m.InBounds(start) && m.InBounds(goal) {
		return nil
	}

	return &BoundsError{Width: m.width, Height: m.height, Start: start, Goal: goal}
}

// Offsets returns the neighbor offsets for conn. The returned slice is shared
// and must not be modified.
func Offsets(conn Connectivity) []Cell {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// Rows returns a fresh [][]uint8 copy of the terrain.
// Complexity: O(W×H).
func (m *GridMap) Rows() [][]uint8 {
	rows := make([][]uint8, m.height)
	for y := range rows {
		rows[y] = make([]uint8, m.width)
		copy(rows[y], m.codes[y*m.width:(y+1)*m.width])
	}

	return rows
}
