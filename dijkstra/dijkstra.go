package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from Options.Source to every vertex it
// reaches in g, or until Options.Target is finalized.
//
// Returns:
//
//   - dist: map from vertex to minimum distance. Vertices that were never
//     reached are absent. With Target set, only the target's entry is
//     guaranteed final; other entries are upper bounds.
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     The source has no entry.
//   - err:  ErrNoSource, ErrNilGraph, or a wrapped ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, opts ...Option) (map[int]int64, map[int]int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]int64),
		visited: make(map[int]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int)
	}

	// 4) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the vertex sequence source → target from a predecessor map.
// Returns nil when target was not reached.
// Complexity: O(path length).
func PathTo(prev map[int]int, source, target int) []int {
	if source == target {
		return []int{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}
	path := []int{target}
	for at := target; at != source; {
		p, ok := prev[at]
		if !ok {
			return nil
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	dist    map[int]int64 // vertex → current best distance from Source
	prev    map[int]int   // vertex → predecessor on the shortest path
	visited map[int]bool  // finalized vertices
	pq      nodePQ
	arcs    []Arc // scratch buffer reused across relaxations
}

// init sets the source distance to zero and seeds the heap.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The target vertex is finalized.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale heap entries (lazy decrease-key).
		if r.visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}
		r.visited[u] = true
		if cfg.hasTarget && u == cfg.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc out of u and pushes improved distances.
// It ignores arcs at or above InfEdgeThreshold and candidates beyond MaxDistance.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	r.arcs = r.g.Arcs(u, r.arcs[:0])
	du := r.dist[u]
	for _, a := range r.arcs {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if a.Weight < 0 {
			return fmt.Errorf("%w: arc %d→%d weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
		}
		if r.visited[a.To] {
			continue
		}
		nd := du + a.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		// Strictly better only: equal distances keep the first predecessor found.
		if cur, ok := r.dist[a.To]; ok && nd >= cur {
			continue
		}
		r.dist[a.To] = nd
		if r.prev != nil {
			r.prev[a.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: nd})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
