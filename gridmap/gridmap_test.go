package gridmap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/gridmap"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]uint8
		err  error
	}{
		{"NilRows", nil, gridmap.ErrEmptyGrid},
		{"EmptyRows", [][]uint8{}, gridmap.ErrEmptyGrid},
		{"EmptyCols", [][]uint8{{}}, gridmap.ErrEmptyGrid},
		{"EmptyLaterRow", [][]uint8{{0, 0}, {}}, gridmap.ErrNonRectangular},
		{"ShortLastRow", [][]uint8{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0}}, gridmap.ErrNonRectangular},
		{"LongMiddleRow", [][]uint8{{1, 2}, {3, 4, 5}, {6, 7}}, gridmap.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := gridmap.New(tc.grid)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, gridmap.ErrInvalidGrid, "every rejection is an invalid grid")
		})
	}
}

// TestNew_CopiesInput ensures later caller mutation does not leak into the map.
func TestNew_CopiesInput(t *testing.T) {
	rows := [][]uint8{{0, 1}, {2, 3}}
	m, err := gridmap.New(rows)
	require.NoError(t, err)

	rows[0][0] = 9
	code, err := m.TerrainAt(gridmap.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, uint8(0), code)
	assert.Equal(t, [][]uint8{{0, 1}, {2, 3}}, m.Rows())
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	m, err := gridmap.New([][]uint8{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.Width())
	require.Equal(t, 2, m.Height())
	require.Equal(t, 6, m.Len())

	for _, c := range []gridmap.Cell{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, m.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []gridmap.Cell{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, m.InBounds(c), "InBounds(%v)", c)
	}
}

// TestIndexOfCellOf verifies the row-major bijection on every cell.
func TestIndexOfCellOf(t *testing.T) {
	m, err := gridmap.New([][]uint8{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	seen := make(map[int]bool, m.Len())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := gridmap.Cell{X: x, Y: y}
			i := m.IndexOf(c)
			require.Equal(t, y*4+x, i)
			require.Equal(t, c, m.CellOf(i))
			seen[i] = true
		}
	}
	require.Len(t, seen, 12)
}

// TestTerrainAt covers in-bounds reads and the defensive bounds check.
func TestTerrainAt(t *testing.T) {
	m, err := gridmap.New([][]uint8{
		{0, 3, 0},
		{7, 0, 1},
	})
	require.NoError(t, err)

	code, err := m.TerrainAt(gridmap.Cell{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, uint8(3), code)
	code, err = m.TerrainAt(gridmap.Cell{X: 0, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, uint8(7), code)
	assert.Equal(t, uint8(1), m.Code(5))

	_, err = m.TerrainAt(gridmap.Cell{X: 3, Y: 1})
	require.ErrorIs(t, err, gridmap.ErrOutOfBounds)
	var be *gridmap.BoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 3, be.Width)
	assert.Equal(t, 2, be.Height)
	assert.Equal(t, gridmap.Cell{X: 3, Y: 1}, be.Start)
}

// TestCheckBounds reports width, height and both coordinates.
func TestCheckBounds(t *testing.T) {
	m, err := gridmap.New([][]uint8{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}})
	require.NoError(t, err)

	require.NoError(t, m.CheckBounds(gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 4, Y: 1}))

	err = m.CheckBounds(gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 5, Y: 1})
	var be *gridmap.BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 5, be.Width)
	assert.Equal(t, 2, be.Height)
	assert.Equal(t, gridmap.Cell{X: 5, Y: 1}, be.Goal)
	assert.Contains(t, err.Error(), "5x2")
	assert.Contains(t, err.Error(), "(5,1)")
}

// TestOffsets checks the documented neighbor order.
func TestOffsets(t *testing.T) {
	four := gridmap.Offsets(gridmap.Conn4)
	require.Len(t, four, 4)
	for _, d := range four {
		assert.False(t, d.Diagonal(), "Conn4 offset %v", d)
	}

	eight := gridmap.Offsets(gridmap.Conn8)
	require.Len(t, eight, 8)
	assert.Equal(t, four, eight[:4], "straight moves come first")
	for _, d := range eight[4:] {
		assert.True(t, d.Diagonal(), "Conn8 offset %v", d)
	}
}
