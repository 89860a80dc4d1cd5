package pathsearch

import (
	"sort"

	"github.com/katalvlaran/pathgrid/dijkstra"
)

// abstractGraph is the precomputed entrance graph of the chunked variant.
// Vertices are row-major cell indices; adjacency lists are sorted by
// (To, Weight) and never mutated after construction.
type abstractGraph struct {
	adj map[int][]dijkstra.Arc
}

func newAbstractGraph() *abstractGraph {
	return &abstractGraph{adj: make(map[int][]dijkstra.Arc)}
}

// addArc appends a directed arc u→v.
func (g *abstractGraph) addArc(u, v int, w int64) {
	g.adj[u] = append(g.adj[u], dijkstra.Arc{To: v, Weight: w})
}

// seal orders every adjacency list.
func (g *abstractGraph) seal() {
	for _, arcs := range g.adj {
		sort.Slice(arcs, func(i, j int) bool {
			if arcs[i].To != arcs[j].To {
				return arcs[i].To < arcs[j].To
			}

			return arcs[i].Weight < arcs[j].Weight
		})
	}
}

// Arcs implements dijkstra.Graph.
func (g *abstractGraph) Arcs(u int, dst []dijkstra.Arc) []dijkstra.Arc {
	return append(dst, g.adj[u]...)
}

// overlay layers per-query start and goal arcs on top of a shared
// abstractGraph without touching it.
type overlay struct {
	base  *abstractGraph
	extra map[int][]dijkstra.Arc
}

func newOverlay(base *abstractGraph) *overlay {
	return &overlay{base: base, extra: make(map[int][]dijkstra.Arc)}
}

func (o *overlay) addArc(u, v int, w int64) {
	o.extra[u] = append(o.extra[u], dijkstra.Arc{To: v, Weight: w})
}

// Arcs implements dijkstra.Graph.
func (o *overlay) Arcs(u int, dst []dijkstra.Arc) []dijkstra.Arc {
	dst = o.base.Arcs(u, dst)

	return append(dst, o.extra[u]...)
}
