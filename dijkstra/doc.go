// Package dijkstra provides Dijkstra's shortest-path algorithm over implicit
// weighted graphs whose vertices are integers (grid cell indices, entrance
// nodes of a chunked map, ...).
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - The graph is described by the Graph interface only: no vertex catalog is
//     required, so callers can overlay query-local arcs on a shared, immutable graph.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - Target: stop as soon as the target vertex is finalized.
//   - ReturnPath: if enabled, returns a predecessor map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any arc with weight ≥ threshold as impassable.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) worst-case under the lazy decrease-key strategy.
//
// Determinism:
//
//   - Heap ties on distance are broken by the smaller vertex ID, and arcs are
//     relaxed in the order Graph.Arcs returns them, so a fixed graph always
//     yields the same predecessor map.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        Source option not given.
//   - ErrNilGraph:        nil Graph.
//   - ErrNegativeWeight:  an arc with negative weight was relaxed.
//   - ErrBadMaxDistance:  (panic) WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold with a non-positive value.
//
// Thread safety:
//
//   - Dijkstra keeps all mutable state in a per-call runner; concurrent calls
//     are safe as long as Graph.Arcs is safe for concurrent reads.
package dijkstra
