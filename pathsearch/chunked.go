package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/costmodel"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/gridmap"
)

// segmentKey identifies a route between two cells of the same chunk.
type segmentKey struct{ from, to int }

// chunked is the hierarchical variant. Everything except the per-query
// overlay is built once in newChunked and read-only afterwards.
type chunked struct {
	m      *gridmap.GridMap
	size   int
	across int     // chunks per row
	enter  []int64 // cost of entering each cell, -1 when blocked

	graph    *abstractGraph
	nodes    [][]int              // entrance indices per chunk, ascending
	segments map[segmentKey][]int // entrance → entrance routes, both ends inclusive
	entrance int
}

func newChunked(m *gridmap.GridMap, w costmodel.Weighted, size int) *chunked {
	across := (m.Width() + size - 1) / size
	down := (m.Height() + size - 1) / size
	c := &chunked{
		m:        m,
		size:     size,
		across:   across,
		enter:    make([]int64, m.Len()),
		graph:    newAbstractGraph(),
		nodes:    make([][]int, across*down),
		segments: make(map[segmentKey][]int),
	}
	for i := range c.enter {
		cost, ok := w.EnterCost(m.Code(i))
		if !ok {
			cost = -1
		}
		c.enter[i] = cost
	}

	c.linkChunks()
	for chunk := range c.nodes {
		c.linkEntrances(chunk)
	}
	c.graph.seal()

	return c
}

// chunkOf returns the chunk id of row-major index i.
func (c *chunked) chunkOf(i int) int {
	cell := c.m.CellOf(i)

	return (cell.Y/c.size)*c.across + cell.X/c.size
}

// linkChunks marks every passable cell with a passable 4-neighbor in another
// chunk as an entrance and adds the crossing arcs. Row-major iteration keeps
// each chunk's entrance list sorted.
func (c *chunked) linkChunks() {
	offsets := gridmap.Offsets(gridmap.Conn4)
	for i, cost := range c.enter {
		if cost < 0 {
			continue
		}
		from := c.m.CellOf(i)
		home := c.chunkOf(i)
		isEntrance := false
		for _, d := range offsets {
			to := from.Add(d)
			if !c.m.InBounds(to) {
				continue
			}
			j := c.m.IndexOf(to)
			if c.enter[j] < 0 || c.chunkOf(j) == home {
				continue
			}
			c.graph.addArc(i, j, c.enter[j])
			isEntrance = true
		}
		if isEntrance {
			c.nodes[home] = append(c.nodes[home], i)
			c.entrance++
		}
	}
}

// linkEntrances runs one chunk-local Dijkstra per entrance and caches the
// cheapest route to every other entrance of the same chunk.
func (c *chunked) linkEntrances(chunk int) {
	nodes := c.nodes[chunk]
	if len(nodes) < 2 {
		return
	}
	view := chunkView{c: c, chunk: chunk}
	for _, u := range nodes {
		dist, prev, err := dijkstra.Dijkstra(view, dijkstra.Source(u), dijkstra.WithReturnPath())
		if err != nil {
			// chunkView only emits non-negative weights.
			panic(fmt.Sprintf("pathsearch: chunk %d: %v", chunk, err))
		}
		for _, v := range nodes {
			if v == u {
				continue
			}
			d, ok := dist[v]
			if !ok {
				continue
			}
			c.graph.addArc(u, v, d)
			c.segments[segmentKey{u, v}] = dijkstra.PathTo(prev, u, v)
		}
	}
}

// find routes start → goal over the entrance graph plus a per-query overlay,
// then expands each abstract hop into grid cells.
//
// The overlay links start to the entrances it can reach inside its chunk and
// every entrance of the goal chunk to goal. A blocked start is never an
// entrance, so its exits into neighboring chunks are linked the same way.
// Routes found for the overlay are kept in a query-local segment map.
func (c *chunked) find(start, goal int) (Result, error) {
	q := &chunkQuery{
		c:     c,
		goal:  goal,
		ov:    newOverlay(c.graph),
		local: make(map[segmentKey][]int),
	}
	if err := q.linkFrom(start, c.chunkOf(start)); err != nil {
		return Result{}, err
	}
	if c.enter[start] < 0 {
		from := c.m.CellOf(start)
		for _, d := range gridmap.Offsets(gridmap.Conn4) {
			to := from.Add(d)
			if !c.m.InBounds(to) {
				continue
			}
			j := c.m.IndexOf(to)
			if c.enter[j] < 0 || c.chunkOf(j) == c.chunkOf(start) {
				continue
			}
			q.ov.addArc(start, j, c.enter[j])
			if j != goal {
				if err := q.linkFrom(j, c.chunkOf(j)); err != nil {
					return Result{}, err
				}
			}
		}
	}
	if err := q.linkInto(); err != nil {
		return Result{}, err
	}

	dist, prev, err := dijkstra.Dijkstra(q.ov, dijkstra.Source(start), dijkstra.Target(goal), dijkstra.WithReturnPath())
	if err != nil {
		return Result{}, err
	}
	total, ok := dist[goal]
	if !ok {
		return Result{Expanded: len(dist)}, nil
	}

	hops := dijkstra.PathTo(prev, start, goal)
	cells := []int{start}
	for i := 1; i < len(hops); i++ {
		u, v := hops[i-1], hops[i]
		var seg []int
		switch {
		case c.chunkOf(u) != c.chunkOf(v):
			seg = []int{u, v}
		case q.local[segmentKey{u, v}] != nil:
			seg = q.local[segmentKey{u, v}]
		default:
			seg = c.segments[segmentKey{u, v}]
		}
		cells = append(cells, seg[1:]...)
	}

	return Result{
		Path:     cellsOf(c.m, cells),
		Cost:     float64(total),
		Expanded: len(dist),
		Found:    true,
	}, nil
}

// chunkQuery is the per-query state of the chunked variant.
type chunkQuery struct {
	c     *chunked
	goal  int
	ov    *overlay
	local map[segmentKey][]int
}

// linkFrom searches chunk forward from root and links root to every entrance
// it reaches, and to goal when goal lies in the same chunk.
func (q *chunkQuery) linkFrom(root, chunk int) error {
	dist, prev, err := dijkstra.Dijkstra(chunkView{c: q.c, chunk: chunk}, dijkstra.Source(root), dijkstra.WithReturnPath())
	if err != nil {
		return err
	}
	targets := q.c.nodes[chunk]
	if q.c.chunkOf(q.goal) == chunk {
		targets = append(targets[:len(targets):len(targets)], q.goal)
	}
	for _, n := range targets {
		d, ok := dist[n]
		if !ok || n == root {
			continue
		}
		q.ov.addArc(root, n, d)
		q.local[segmentKey{root, n}] = dijkstra.PathTo(prev, root, n)
	}

	return nil
}

// linkInto searches the goal chunk backward from goal and links every
// entrance that can reach it.
func (q *chunkQuery) linkInto() error {
	chunk := q.c.chunkOf(q.goal)
	dist, next, err := dijkstra.Dijkstra(chunkView{c: q.c, chunk: chunk, reverse: true}, dijkstra.Source(q.goal), dijkstra.WithReturnPath())
	if err != nil {
		return err
	}
	for _, n := range q.c.nodes[chunk] {
		d, ok := dist[n]
		if !ok || n == q.goal {
			continue
		}
		key := segmentKey{n, q.goal}
		if _, seen := q.local[key]; seen {
			continue
		}
		q.ov.addArc(n, q.goal, d)
		q.local[key] = towards(next, n, q.goal)
	}

	return nil
}

func (c *chunked) stats(st *Stats) {
	st.ChunkSize = c.size
	st.Chunks = len(c.nodes)
	st.Entrances = c.entrance
	st.Segments = len(c.segments)
}

// towards follows next-hop links of a backward search from u to its root.
func towards(next map[int]int, u, root int) []int {
	path := []int{u}
	for at := u; at != root; {
		at = next[at]
		path = append(path, at)
	}

	return path
}

// chunkView exposes the 4-directional grid restricted to one chunk as a
// dijkstra.Graph. Forward arcs u→v cost enter[v]; with reverse set the arcs
// are flipped (v→u costs enter[u]) so a search rooted at a goal yields the
// cheapest way into it.
type chunkView struct {
	c       *chunked
	chunk   int
	reverse bool
}

// Arcs implements dijkstra.Graph.
func (v chunkView) Arcs(u int, dst []dijkstra.Arc) []dijkstra.Arc {
	c := v.c
	if v.reverse && c.enter[u] < 0 {
		return dst
	}
	from := c.m.CellOf(u)
	for _, d := range gridmap.Offsets(gridmap.Conn4) {
		to := from.Add(d)
		if !c.m.InBounds(to) {
			continue
		}
		j := c.m.IndexOf(to)
		if c.enter[j] < 0 || c.chunkOf(j) != v.chunk {
			continue
		}
		if v.reverse {
			dst = append(dst, dijkstra.Arc{To: j, Weight: c.enter[u]})
		} else {
			dst = append(dst, dijkstra.Arc{To: j, Weight: c.enter[j]})
		}
	}

	return dst
}
