// Package pathsearch computes shortest paths over a gridmap.GridMap.
//
// A Searcher is bound to one map at construction and selects one of two
// algorithms (a tagged variant fixed at load time):
//
//   - AlgorithmDirect: A* over the full grid with 8-directional movement under
//     costmodel.Direct (straight 1.0, diagonal 1.4, non-zero codes blocked).
//     The heuristic is the Euclidean distance scaled so one diagonal step
//     estimates exactly costmodel.DiagonalCost, which keeps it admissible.
//   - AlgorithmChunked: hierarchical search under costmodel.Weighted with
//     4-directional movement. The grid is cut into ChunkSize×ChunkSize chunks;
//     entrance cells on chunk borders, the arcs between neighboring chunks and
//     the cheapest intra-chunk route between every pair of entrances are
//     computed once, at construction. A query routes over this abstract graph
//     and expands each hop with the cached intra-chunk routes.
//
// Both variants label connected regions up front, so a query between cells
// that can never meet returns "no path" in O(1).
//
// A Searcher is immutable: Find may be called from any number of goroutines.
//
// Complexity:
//
//   - New (direct):   O(W·H).
//   - New (chunked):  O(W·H + C·E·S²·log S²), C chunks, E entrances per chunk, S chunk side.
//   - Find (direct):  O(V log V) over the explored area.
//   - Find (chunked): O(S² log S² + A log A), A abstract nodes reached.
package pathsearch
