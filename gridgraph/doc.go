// Package gridgraph treats a square matrix of traversal costs as a graph
// for a robot that moves in four directions.
//
// What:
//
//   - GridGraph wraps an immutable n×n matrix of positive int64 costs.
//   - The cost of a cell is charged when the robot enters it.
//   - Geometric queries: IsValid, IsCorner, Neighbors, Corners.
//   - Cost assigners (CostFunc) decide how a fresh grid is populated:
//     UniformCost for random terrain, ConstantCost for flat terrain.
//
// Why:
//
//   - Robot navigation: every cell is traversable, some are more expensive.
//   - Search engines (see package dijkstra) only need Neighbors and IsCorner,
//     so they never depend on how the costs were produced.
//
// Neighbour order:
//
//	east (0,+1), south (+1,0), west (0,-1), north (-1,0)
//
// The order does not affect path cost; it only decides which of several
// equal-cost paths a search returns.
//
// Complexity:
//
//   - New, FromRows:      O(n²) time and memory.
//   - IsValid, IsCorner:  O(1).
//   - Neighbors:          O(1), at most 4 entries.
//
// Errors:
//
//   - ErrEmptyGrid:       n < 1 or no rows.
//   - ErrNotSquare:       a row length differs from the row count.
//   - ErrNonPositiveCost: a cell cost is < 1.
//   - ErrNilCostFunc:     New was called without a cost assigner.
//   - ErrCostTooLarge:    a cell cost exceeds MaxCellCost(n).
package gridgraph
