package gridgraph

import (
	"fmt"
	"math/rand"
)

// Default cost bounds for randomly generated terrain.
const (
	DefaultMinCost int64 = 1
	DefaultMaxCost int64 = 3
)

// UniformCost returns a CostFunc drawing uniformly from [lo, hi] inclusive.
// Returns ErrBadCostRange unless 1 <= lo <= hi. The returned func is not
// safe for concurrent use because *rand.Rand is not.
func UniformCost(rng *rand.Rand, lo, hi int64) (CostFunc, error) {
	if lo < 1 || hi < lo {
		return nil, fmt.Errorf("%w: lo=%d hi=%d", ErrBadCostRange, lo, hi)
	}
	span := hi - lo + 1

	return func(int, int) int64 {
		return lo + rng.Int63n(span)
	}, nil
}

// DefaultCost draws from [DefaultMinCost, DefaultMaxCost].
func DefaultCost(rng *rand.Rand) CostFunc {
	fn, _ := UniformCost(rng, DefaultMinCost, DefaultMaxCost)

	return fn
}

// ConstantCost gives every cell the same cost c.
func ConstantCost(c int64) CostFunc {
	return func(int, int) int64 { return c }
}
