package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robopath/gridgraph"
)

// bruteForce enumerates every simple four-directional path from start and
// returns the cheapest entry-cost sum to each cell. Positive costs mean an
// optimal path never revisits a cell, so simple paths suffice.
func bruteForce(g *gridgraph.GridGraph, start gridgraph.Coordinate) map[gridgraph.Coordinate]int64 {
	best := make(map[gridgraph.Coordinate]int64, g.Size()*g.Size())
	onPath := make(map[gridgraph.Coordinate]bool, g.Size()*g.Size())

	var walk func(c gridgraph.Coordinate, cost int64)
	walk = func(c gridgraph.Coordinate, cost int64) {
		if b, ok := best[c]; !ok || cost < b {
			best[c] = cost
		}
		onPath[c] = true
		for _, nb := range g.Neighbors(c.Row, c.Col) {
			if !onPath[nb.Coord] {
				walk(nb.Coord, cost+nb.Cost)
			}
		}
		onPath[c] = false
	}
	walk(start, 0)

	return best
}

// randomGrid builds an n×n grid with costs in [1, hi] from a fixed seed.
func randomGrid(t testing.TB, n int, hi int64, seed int64) *gridgraph.GridGraph {
	t.Helper()
	fn, err := gridgraph.UniformCost(rand.New(rand.NewSource(seed)), 1, hi)
	require.NoError(t, err)
	g, err := gridgraph.New(n, fn)
	require.NoError(t, err)

	return g
}

// gridFromMask builds a 3×3 grid whose cell i costs 2 when bit i of mask is set, else 1.
func gridFromMask(t testing.TB, mask int) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.New(3, func(r, c int) int64 {
		if mask&(1<<(r*3+c)) != 0 {
			return 2
		}
		return 1
	})
	require.NoError(t, err)

	return g
}

// pathCost sums the entry costs of path[1:].
func pathCost(g *gridgraph.GridGraph, path []gridgraph.Coordinate) int64 {
	var sum int64
	for _, c := range path[1:] {
		sum += g.CostAt(c)
	}

	return sum
}

// allCells lists every coordinate of g in row-major order.
func allCells(g *gridgraph.GridGraph) []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, 0, g.Size()*g.Size())
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			out = append(out, gridgraph.At(r, c))
		}
	}

	return out
}
