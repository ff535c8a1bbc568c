package gridgraph_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robopath/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty sizes, nil assigners and non-positive costs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		fn   gridgraph.CostFunc
		err  error
	}{
		{"ZeroSize", 0, gridgraph.ConstantCost(1), gridgraph.ErrEmptyGrid},
		{"NegativeSize", -3, gridgraph.ConstantCost(1), gridgraph.ErrEmptyGrid},
		{"NilFunc", 2, nil, gridgraph.ErrNilCostFunc},
		{"ZeroCost", 2, gridgraph.ConstantCost(0), gridgraph.ErrNonPositiveCost},
		{"NegativeCost", 2, func(r, c int) int64 {
			if r == 1 && c == 1 {
				return -1
			}
			return 1
		}, gridgraph.ErrNonPositiveCost},
		{"CostTooLarge", 2, gridgraph.ConstantCost(math.MaxInt64/4 + 1), gridgraph.ErrCostTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.n, tc.fn)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d) error = %v; want %v", tc.n, err, tc.err)
			}
		})
	}
}

// TestFromRows_Errors verifies that FromRows rejects empty, ragged and non-square inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		err  error
	}{
		{"Empty", [][]int64{}, gridgraph.ErrEmptyGrid},
		{"EmptyRow", [][]int64{{}}, gridgraph.ErrNotSquare},
		{"Ragged", [][]int64{{1, 2}, {3}}, gridgraph.ErrNotSquare},
		{"Rectangular", [][]int64{{1, 2, 3}, {4, 5, 6}}, gridgraph.ErrNotSquare},
		{"ZeroCost", [][]int64{{1, 0}, {1, 1}}, gridgraph.ErrNonPositiveCost},
		{"MaxInt64Cost", [][]int64{{1, math.MaxInt64}, {1, 1}}, gridgraph.ErrCostTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestMaxCellCost verifies the per-cell bound and that a grid at the bound is accepted.
func TestMaxCellCost(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), gridgraph.MaxCellCost(1))
	assert.Equal(t, int64(math.MaxInt64/4), gridgraph.MaxCellCost(2))
	assert.Zero(t, gridgraph.MaxCellCost(0))

	for _, n := range []int{1, 2, 3, 7, 100} {
		limit := gridgraph.MaxCellCost(n)
		// n² cells at the bound sum without overflow.
		var sum int64
		for i := 0; i < n*n; i++ {
			require.LessOrEqual(t, sum, int64(math.MaxInt64)-limit, "n=%d i=%d", n, i)
			sum += limit
		}

		g, err := gridgraph.New(n, gridgraph.ConstantCost(limit))
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, limit, g.Cost(n-1, n-1))
	}
}

// TestFromRows_DeepCopy checks that mutating the input after construction has no effect.
func TestFromRows_DeepCopy(t *testing.T) {
	rows := [][]int64{{1, 2}, {3, 4}}
	g, err := gridgraph.FromRows(rows)
	require.NoError(t, err)

	rows[0][1] = 99
	assert.Equal(t, int64(2), g.Cost(0, 1))

	out := g.Rows()
	out[1][0] = 42
	assert.Equal(t, int64(3), g.Cost(1, 0), "Rows must return a copy")
}

// TestNew_RowMajorOrder checks that the cost assigner sees every cell once, row by row.
func TestNew_RowMajorOrder(t *testing.T) {
	var seen []gridgraph.Coordinate
	g, err := gridgraph.New(3, func(r, c int) int64 {
		seen = append(seen, gridgraph.At(r, c))
		return int64(r*3 + c + 1)
	})
	require.NoError(t, err)
	require.Len(t, seen, 9)
	for i, c := range seen {
		assert.Equal(t, gridgraph.At(i/3, i%3), c)
		assert.Equal(t, int64(i+1), g.CostAt(c))
	}
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestIsValid checks IsValid on a 3×3 grid.
func TestIsValid(t *testing.T) {
	g, err := gridgraph.New(3, gridgraph.ConstantCost(1))
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {2, 2}, {1, 2}, {2, 0}}
	for _, rc := range valid {
		if !g.IsValid(rc[0], rc[1]) {
			t.Errorf("IsValid(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}}
	for _, rc := range invalid {
		if g.IsValid(rc[0], rc[1]) {
			t.Errorf("IsValid(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

// TestIsCorner checks every cell of a 4×4 grid against the four extremities.
func TestIsCorner(t *testing.T) {
	g, err := gridgraph.New(4, gridgraph.ConstantCost(1))
	require.NoError(t, err)

	want := map[gridgraph.Coordinate]bool{
		gridgraph.At(0, 0): true,
		gridgraph.At(0, 3): true,
		gridgraph.At(3, 0): true,
		gridgraph.At(3, 3): true,
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, want[gridgraph.At(r, c)], g.IsCorner(r, c), "IsCorner(%d,%d)", r, c)
		}
	}
	assert.ElementsMatch(t, []gridgraph.Coordinate{
		gridgraph.At(0, 0), gridgraph.At(0, 3), gridgraph.At(3, 0), gridgraph.At(3, 3),
	}, g.Corners())
}

// TestIsCorner_SingleCell checks that the lone cell of a 1×1 grid is a corner.
func TestIsCorner_SingleCell(t *testing.T) {
	g, err := gridgraph.New(1, gridgraph.ConstantCost(5))
	require.NoError(t, err)

	assert.True(t, g.IsCorner(0, 0))
	assert.Equal(t, []gridgraph.Coordinate{gridgraph.At(0, 0)}, g.Corners())
	assert.Empty(t, g.Neighbors(0, 0))
}

// TestNeighbors checks order, bounds filtering and that costs come from the neighbour cell.
func TestNeighbors(t *testing.T) {
	g, err := gridgraph.FromRows([][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	cases := []struct {
		name     string
		row, col int
		want     []gridgraph.Neighbor
	}{
		{"Center", 1, 1, []gridgraph.Neighbor{
			{Coord: gridgraph.At(1, 2), Cost: 6},
			{Coord: gridgraph.At(2, 1), Cost: 8},
			{Coord: gridgraph.At(1, 0), Cost: 4},
			{Coord: gridgraph.At(0, 1), Cost: 2},
		}},
		{"TopLeft", 0, 0, []gridgraph.Neighbor{
			{Coord: gridgraph.At(0, 1), Cost: 2},
			{Coord: gridgraph.At(1, 0), Cost: 4},
		}},
		{"BottomRight", 2, 2, []gridgraph.Neighbor{
			{Coord: gridgraph.At(2, 1), Cost: 8},
			{Coord: gridgraph.At(1, 2), Cost: 6},
		}},
		{"TopEdge", 0, 1, []gridgraph.Neighbor{
			{Coord: gridgraph.At(0, 2), Cost: 3},
			{Coord: gridgraph.At(1, 1), Cost: 5},
			{Coord: gridgraph.At(0, 0), Cost: 1},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Neighbors(tc.row, tc.col))
		})
	}
}

//----------------------------------------------------------------------------//
// Coordinate and CostFunc Tests
//----------------------------------------------------------------------------//

func TestCoordinate(t *testing.T) {
	c := gridgraph.At(2, 3)
	assert.Equal(t, "(2, 3)", c.String())
	assert.True(t, c.Adjacent(gridgraph.At(2, 4)))
	assert.True(t, c.Adjacent(gridgraph.At(1, 3)))
	assert.False(t, c.Adjacent(gridgraph.At(3, 4)), "diagonal is not adjacent")
	assert.False(t, c.Adjacent(c), "a cell is not adjacent to itself")
	assert.False(t, c.Adjacent(gridgraph.At(2, 5)))
}

// TestUniformCost checks range validation and that draws stay inside [lo, hi].
func TestUniformCost(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	_, err := gridgraph.UniformCost(rng, 0, 3)
	require.ErrorIs(t, err, gridgraph.ErrBadCostRange)
	_, err = gridgraph.UniformCost(rng, 4, 3)
	require.ErrorIs(t, err, gridgraph.ErrBadCostRange)

	fn := gridgraph.DefaultCost(rng)
	g, err := gridgraph.New(30, fn)
	require.NoError(t, err)

	seen := make(map[int64]bool)
	for _, row := range g.Rows() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, gridgraph.DefaultMinCost)
			require.LessOrEqual(t, v, gridgraph.DefaultMaxCost)
			seen[v] = true
		}
	}
	assert.Len(t, seen, 3, "900 draws should hit every value in [1,3]")
}

// TestUniformCost_Deterministic checks that equal seeds yield equal grids.
func TestUniformCost_Deterministic(t *testing.T) {
	build := func() [][]int64 {
		fn, err := gridgraph.UniformCost(rand.New(rand.NewSource(7)), 1, 9)
		require.NoError(t, err)
		g, err := gridgraph.New(6, fn)
		require.NoError(t, err)
		return g.Rows()
	}
	assert.Equal(t, build(), build())
}
