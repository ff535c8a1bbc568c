package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/robopath/gridgraph"
)

// BenchmarkNew measures random grid construction for a 500×500 grid.
// Complexity: O(n²)
func BenchmarkNew(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	fn := gridgraph.DefaultCost(rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.New(n, fn); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNeighbors measures a full sweep of neighbour queries over a 500×500 grid.
func BenchmarkNeighbors(b *testing.B) {
	const n = 500
	g, err := gridgraph.New(n, gridgraph.DefaultCost(rand.New(rand.NewSource(42))))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				_ = g.Neighbors(r, c)
			}
		}
	}
}
