// Package robopath finds the cheapest route for a single robot across a
// square grid of traversal costs, moving one cell east, south, west or
// north at a time.
//
// What is in the box:
//
//	gridgraph/       - immutable n×n cost grid, corner and neighbour queries, cost assigners
//	dijkstra/        - uniform-cost search: path, total cost, corners explored
//	report/          - presentation data for a search, plain-text and YAML encoders
//	internal/config  - YAML configuration with embedded defaults
//	internal/storage - SQLite run history
//	cmd/robopath     - command-line entry point
//
// Quick ASCII example (costs are charged when a cell is entered):
//
//	S(1)  2
//	 3   E(4)
//
// The cheapest route from S to E goes right then down and costs 2+4 = 6.
//
//	go install github.com/katalvlaran/robopath/cmd/robopath@latest
package robopath
