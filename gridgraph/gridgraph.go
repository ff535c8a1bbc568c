package gridgraph

import (
	"fmt"
	"math"
)

// New builds an n×n grid whose cells are populated by fn.
// Returns ErrEmptyGrid if n < 1, ErrNilCostFunc if fn is nil,
// ErrNonPositiveCost if fn yields a cost < 1 and ErrCostTooLarge if it
// yields more than MaxCellCost(n); both are wrapped with the offending cell.
// Complexity: O(n²) time and memory.
func New(n int, fn CostFunc) (*GridGraph, error) {
	if n < 1 {
		return nil, ErrEmptyGrid
	}
	if fn == nil {
		return nil, ErrNilCostFunc
	}
	limit := MaxCellCost(n)
	costs := make([][]int64, n)
	for r := 0; r < n; r++ {
		costs[r] = make([]int64, n)
		for c := 0; c < n; c++ {
			v := fn(r, c)
			if v < 1 {
				return nil, fmt.Errorf("%w: cell %s cost=%d", ErrNonPositiveCost, At(r, c), v)
			}
			if v > limit {
				return nil, fmt.Errorf("%w: cell %s cost=%d max=%d", ErrCostTooLarge, At(r, c), v, limit)
			}
			costs[r][c] = v
		}
	}

	return &GridGraph{n: n, costs: costs}, nil
}

// MaxCellCost returns the largest cell cost an n×n grid accepts. Any
// sum of at most n² such costs stays strictly below math.MaxInt64, so
// path totals neither overflow nor collide with an "infinite" sentinel.
func MaxCellCost(n int) int64 {
	if n < 1 {
		return 0
	}

	return math.MaxInt64 / int64(n) / int64(n)
}

// FromRows builds a grid from preloaded costs. It deep-copies the input
// so later changes to rows do not leak into the grid.
// Returns ErrEmptyGrid, ErrNotSquare or ErrNonPositiveCost.
func FromRows(rows [][]int64) (*GridGraph, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), n)
		}
	}

	return New(n, func(r, c int) int64 { return rows[r][c] })
}

// Size returns n, the number of rows (and columns).
func (g *GridGraph) Size() int {
	return g.n
}

// Cost returns the cost of entering (row, col).
// The caller must ensure IsValid(row, col); out-of-range access panics.
func (g *GridGraph) Cost(row, col int) int64 {
	return g.costs[row][col]
}

// CostAt is Cost for a Coordinate.
func (g *GridGraph) CostAt(c Coordinate) int64 {
	return g.costs[c.Row][c.Col]
}

// Rows returns a deep copy of the cost matrix.
func (g *GridGraph) Rows() [][]int64 {
	out := make([][]int64, g.n)
	for r := range g.costs {
		out[r] = make([]int64, g.n)
		copy(out[r], g.costs[r])
	}

	return out
}

// IsValid reports whether (row, col) lies inside the grid.
// Complexity: O(1).
func (g *GridGraph) IsValid(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// Contains is IsValid for a Coordinate.
func (g *GridGraph) Contains(c Coordinate) bool {
	return g.IsValid(c.Row, c.Col)
}

// IsCorner reports whether (row, col) is one of the four grid extremities.
// On a 1×1 grid the only cell is a corner.
func (g *GridGraph) IsCorner(row, col int) bool {
	last := g.n - 1

	return (row == 0 || row == last) && (col == 0 || col == last)
}

// Corners returns the distinct corner cells in (0,0), (0,n-1), (n-1,0),
// (n-1,n-1) order. A 1×1 grid has a single corner.
func (g *GridGraph) Corners() []Coordinate {
	last := g.n - 1
	if last == 0 {
		return []Coordinate{At(0, 0)}
	}

	return []Coordinate{At(0, 0), At(0, last), At(last, 0), At(last, last)}
}

// Neighbors returns the in-bounds orthogonal neighbours of (row, col)
// in east, south, west, north order, each paired with its own cost.
// Returns between 0 and 4 entries and never fails.
func (g *GridGraph) Neighbors(row, col int) []Neighbor {
	out := make([]Neighbor, 0, len(directions))
	for _, d := range directions {
		nr, nc := row+d[0], col+d[1]
		if !g.IsValid(nr, nc) {
			continue
		}
		out = append(out, Neighbor{Coord: At(nr, nc), Cost: g.costs[nr][nc]})
	}

	return out
}
