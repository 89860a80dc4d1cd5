// Package costmodel interprets raw terrain codes as traversal costs.
//
// Two interpretations coexist and are selected per search instance:
//
//   - Direct: code 0 is walkable, anything else is impassable. Movement cost is
//     purely geometric: StraightCost (1.0) for the four axis-aligned neighbors,
//     DiagonalCost (1.4) for the four diagonal ones.
//   - Weighted: codes collapse into three classes. Open (code 0, cost 1),
//     Expensive (code 1, cost 10) and Blocked (code 2, impassable). Any code
//     of 3 or above is normalized to Expensive.
//
// The weighted costs are integers so they can feed integer shortest-path
// searches (see package dijkstra) without rounding drift.
package costmodel
