// Package pathgrid is a grid pathfinding engine meant to be embedded in a
// host application: load 2D terrain maps once, then answer many concurrent
// shortest-path queries against them.
//
// What is in the box?
//
//	• Terrain maps: validated, immutable, row-major grids of terrain codes
//	• Two cost models: geometric (walkable / blocked) and weighted (open / expensive / blocked)
//	• Two search variants, chosen per map at load time:
//		- direct: 8-directional A* with 1.0 straight and 1.4 diagonal steps
//		- chunked: hierarchical search over cached chunk entrances, 4-directional
//	• A concurrency-safe registry: one default map plus any number of named maps
//	• YAML map documents, a JSON schema for them, and a terminal viewer
//
// Packages:
//
//	gridmap/     - terrain grid, bounds and index math, regions, line segments
//	costmodel/   - direct and weighted interpretations of terrain codes
//	dijkstra/    - int-keyed Dijkstra with early exit, used by the chunked search
//	pathsearch/  - Searcher: direct A* or chunked hierarchical search
//	registry/    - default slot + named maps, RW locking, slog logging, Prometheus metrics
//	mapfile/     - YAML map documents and their JSON schema
//	cmd/pathview - terminal viewer for map documents
//
// Quick ASCII example (direct variant, 3 = wall):
//
//	S # . . .        S = (0,0), G = (4,4)
//	* # # # #        cost 9.6: three straight steps down,
//	* # . * .        then diagonals through the gaps
//	* # * # *
//	. * . # G
//
// Coordinates are (x, y) with the origin at the top-left corner, x growing
// to the right and y growing downward.
package pathgrid
