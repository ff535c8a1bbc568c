package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no cells was requested.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one cell")
	// ErrNotSquare indicates rows whose length differs from the number of rows.
	ErrNotSquare = errors.New("gridgraph: grid must be square")
	// ErrNonPositiveCost indicates a cell cost below 1.
	ErrNonPositiveCost = errors.New("gridgraph: cell cost must be positive")
	// ErrNilCostFunc indicates New was called with a nil CostFunc.
	ErrNilCostFunc = errors.New("gridgraph: cost function is nil")
	// ErrCostTooLarge indicates a cell cost that could overflow a path total.
	ErrCostTooLarge = errors.New("gridgraph: cell cost too large for grid size")
	// ErrBadCostRange indicates UniformCost bounds that cannot produce positive costs.
	ErrBadCostRange = errors.New("gridgraph: cost range must satisfy 1 <= lo <= hi")
)
