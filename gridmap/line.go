package gridmap

// Line returns the straight segment of cells from a to b, both inclusive,
// using Bresenham's algorithm. It does not look at terrain and does not
// require either end to be in bounds; callers filter as they need.
//
// The first cell is always a and the last is always b.
// Complexity: O(max(|dx|,|dy|)).
func Line(a, b Cell) []Cell {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	steps := dx
	if -dy > steps {
		steps = -dy
	}
	out := make([]Cell, 0, steps+1)

	err := dx + dy
	x, y := a.X, a.Y
	for {
		out = append(out, Cell{X: x, Y: y})
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}

	return out
}

// Line is the bounds-checked variant of the package-level Line: it returns
// ErrOutOfBounds (as *BoundsError) if either end is outside m.
func (m *GridMap) Line(a, b Cell) ([]Cell, error) {
	if err := m.CheckBounds(a, b); err != nil {
		return nil, err
	}

	return Line(a, b), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}
