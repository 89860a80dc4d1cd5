// Package gridmap stores rectangular terrain grids for pathfinding and answers
// spatial queries over them in O(1).
//
// What:
//
//   - GridMap holds a flattened, row-major copy of a [][]uint8 terrain grid.
//   - Cells are addressed as (x,y) with the origin at the top-left corner,
//     x growing rightwards and y growing downwards.
//   - Terrain codes are kept raw; interpreting them as walkable, costly or
//     blocked is the job of package costmodel.
//
// Why:
//
//   - Game and simulation maps: immutable terrain shared by many concurrent
//     path queries without locking.
//   - Fast rejection: Regions labels connected areas once, so a query between
//     two disconnected cells is answered without a search.
//
// Complexity:
//
//   - New:            O(W×H) time and memory.
//   - InBounds, IndexOf, CellOf, Code: O(1).
//   - Regions:        O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - Line:           O(max(|dx|,|dy|)).
//
// Errors:
//
//   - ErrInvalidGrid: umbrella for every rejected grid.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the map (see BoundsError).
package gridmap
