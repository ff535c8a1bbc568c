// Package dijkstra finds minimum-cost routes for a single robot on a square
// cost grid (see package gridgraph) using uniform-cost search.
//
// Overview:
//
//   - The robot moves east, south, west or north, one cell at a time.
//   - Entering a cell costs that cell's value; the start cell is free.
//   - FindOptimalPath returns the path, its total cost, and the corners of
//     the grid that were popped from the frontier while searching.
//
// When to use:
//
//   - Robot or agent navigation on fully traversable weighted terrain.
//   - Whenever every cell cost is positive; zero or negative costs are
//     rejected earlier by gridgraph.
//
// Key features:
//
//   - Early exit: the search stops as soon as the end cell is popped.
//   - Deterministic ties: equal-cost frontier entries pop in push order, so
//     repeated runs on the same grid return the same path.
//   - Corner bookkeeping: each corner other than the start is recorded once,
//     in discovery order, including corners off the final path.
//   - Hooks: WithOnDequeue and WithOnCorner observe the search without
//     changing it. WithMaxCost caps exploration.
//
// Performance and complexity:
//
//   - Time:  O(n² log n) for an n×n grid.
//   - Space: O(n²) for the distance and predecessor maps and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          the grid pointer is nil.
//   - ErrStartOutOfBounds: start is not a grid cell.
//   - ErrEndOutOfBounds:   end is not a grid cell.
//   - ErrOptionViolation:  an option got an invalid argument (e.g. negative MaxCost).
//
// An unreachable end is not an error: Result.TotalCost is Unreachable and
// Result.Path is empty.
//
// API reference:
//
//	func FindOptimalPath(
//	    g *gridgraph.GridGraph,
//	    start, end gridgraph.Coordinate,
//	    opts ...Option,
//	) (Result, error)
//
// Example:
//
//	g, _ := gridgraph.FromRows([][]int64{{1, 2}, {3, 4}})
//	res, err := dijkstra.FindOptimalPath(g, gridgraph.At(0, 0), gridgraph.At(1, 1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.TotalCost, res.Path) // 6 [(0, 0) (0, 1) (1, 1)]
package dijkstra
