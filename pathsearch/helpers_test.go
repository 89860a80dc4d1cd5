package pathsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/costmodel"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/gridmap"
)

// scenarioRows is the 5×5 walled map used across packages: 3 marks a wall
// under the direct model and expensive ground under the weighted one.
var scenarioRows = [][]uint8{
	{0, 3, 0, 0, 0},
	{0, 3, 3, 3, 3},
	{0, 3, 0, 0, 0},
	{0, 3, 0, 3, 0},
	{0, 0, 0, 3, 0},
}

// cells is shorthand for a literal path.
func cells(xy ...int) []gridmap.Cell {
	out := make([]gridmap.Cell, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, gridmap.Cell{X: xy[i], Y: xy[i+1]})
	}

	return out
}

// mustMap builds a GridMap or fails the test.
func mustMap(t testing.TB, rows [][]uint8) *gridmap.GridMap {
	t.Helper()
	m, err := gridmap.New(rows)
	require.NoError(t, err)

	return m
}

// randomRows returns a w×h grid where each cell is 0 with probability
// openRatio and otherwise a code in [1,3].
func randomRows(rng *rand.Rand, w, h int, openRatio float64) [][]uint8 {
	rows := make([][]uint8, h)
	for y := range rows {
		rows[y] = make([]uint8, w)
		for x := range rows[y] {
			if rng.Float64() >= openRatio {
				rows[y][x] = uint8(1 + rng.Intn(3))
			}
		}
	}

	return rows
}

// refGrid is a plain full-grid dijkstra.Graph used as the reference answer.
// Direct costs are scaled by 10 so 1.0 / 1.4 become exact integers.
type refGrid struct {
	m    *gridmap.GridMap
	conn gridmap.Connectivity
	step func(code uint8, diagonal bool) (int64, bool)
}

func (r refGrid) Arcs(u int, dst []dijkstra.Arc) []dijkstra.Arc {
	c := r.m.CellOf(u)
	for _, d := range gridmap.Offsets(r.conn) {
		n := c.Add(d)
		if !r.m.InBounds(n) {
			continue
		}
		i := r.m.IndexOf(n)
		if w, ok := r.step(r.m.Code(i), d.Diagonal()); ok {
			dst = append(dst, dijkstra.Arc{To: i, Weight: w})
		}
	}

	return dst
}

func directRef(m *gridmap.GridMap) refGrid {
	return refGrid{m: m, conn: gridmap.Conn8, step: func(code uint8, diagonal bool) (int64, bool) {
		if code != 0 {
			return 0, false
		}
		if diagonal {
			return 14, true
		}

		return 10, true
	}}
}

func weightedRef(m *gridmap.GridMap, w costmodel.Weighted) refGrid {
	return refGrid{m: m, conn: gridmap.Conn4, step: func(code uint8, _ bool) (int64, bool) {
		return w.EnterCost(code)
	}}
}

// refCost returns the reference cost start → goal, or false if unreachable.
func refCost(t testing.TB, g refGrid, start, goal gridmap.Cell) (int64, bool) {
	t.Helper()
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(g.m.IndexOf(start)), dijkstra.Target(g.m.IndexOf(goal)))
	require.NoError(t, err)
	d, ok := dist[g.m.IndexOf(goal)]

	return d, ok
}

// requireWalk checks that path runs start → goal through legal moves only
// and returns its cost summed with the same step function as the reference.
func requireWalk(t testing.TB, g refGrid, path []gridmap.Cell, start, goal gridmap.Cell) int64 {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, goal, path[len(path)-1], "path must end at goal")

	var total int64
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		require.True(t, g.m.InBounds(cur), "step %d leaves the map: %v", i, cur)
		dx, dy := cur.X-prev.X, cur.Y-prev.Y
		require.True(t, dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 && (dx != 0 || dy != 0),
			"step %d is not a single move: %v→%v", i, prev, cur)
		diagonal := dx != 0 && dy != 0
		if g.conn == gridmap.Conn4 {
			require.False(t, diagonal, "diagonal step %d under 4-connectivity: %v→%v", i, prev, cur)
		}
		w, ok := g.step(g.m.Code(g.m.IndexOf(cur)), diagonal)
		require.True(t, ok, "step %d enters a blocked cell %v", i, cur)
		total += w
	}

	return total
}
