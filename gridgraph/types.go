package gridgraph

import "fmt"

// Coordinate is a 0-indexed (Row, Col) cell position.
// It is comparable and safe to use as a map key.
type Coordinate struct {
	Row, Col int
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String renders the coordinate as "(row, col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Adjacent reports whether o is exactly one orthogonal step away from c.
func (c Coordinate) Adjacent(o Coordinate) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// Neighbor is an adjacent cell together with the cost of entering it.
type Neighbor struct {
	Coord Coordinate
	Cost  int64
}

// CostFunc assigns the traversal cost of cell (row, col).
// New calls it exactly once per cell, in row-major order.
type CostFunc func(row, col int) int64

// directions lists the four moves in east, south, west, north order.
var directions = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// GridGraph is an immutable n×n cost matrix. It is safe for concurrent use
// by multiple readers because no method mutates it after construction.
type GridGraph struct {
	n     int
	costs [][]int64
}
