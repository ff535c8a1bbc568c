// Package dijkstra defines the result type, options and sentinel errors
// for the robot path search over a gridgraph.GridGraph.
//
// Options:
//
//	– WithOnDequeue: observe every frontier pop, stale pops included.
//	– WithOnCorner:  observe each corner the first time it is recorded.
//	– WithMaxCost:   stop exploring once the popped cost exceeds a cap.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrStartOutOfBounds if start lies outside the grid.
//	– ErrEndOutOfBounds   if end lies outside the grid.
//	– ErrOptionViolation  if an option received an invalid argument.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/robopath/gridgraph"
)

// Sentinel errors returned by FindOptimalPath.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates that the start coordinate is not a grid cell.
	ErrStartOutOfBounds = errors.New("dijkstra: start coordinate out of bounds")

	// ErrEndOutOfBounds indicates that the end coordinate is not a grid cell.
	ErrEndOutOfBounds = errors.New("dijkstra: end coordinate out of bounds")

	// ErrOptionViolation indicates that an Option was given an invalid argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Unreachable is the TotalCost reported when no path to the end was found.
const Unreachable int64 = math.MaxInt64

// Result is the outcome of one search. It never shares memory with the
// search state that produced it.
//
// Path           – start..end inclusive; nil when the end was not reached.
// TotalCost      – sum of entry costs of Path[1:], or Unreachable.
// VisitedCorners – corners other than start, in the order first popped.
type Result struct {
	Path           []gridgraph.Coordinate
	TotalCost      int64
	VisitedCorners []gridgraph.Coordinate
}

// Found reports whether a path to the end was found.
func (r Result) Found() bool {
	return r.TotalCost != Unreachable
}

// Steps returns the number of moves along Path, or 0 when not found.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Option configures a search via functional arguments.
// Invalid arguments are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds hooks and limits for FindOptimalPath.
type Options struct {
	// OnDequeue is called on every frontier pop with the cell and its
	// best known cost, before the end check.
	OnDequeue func(c gridgraph.Coordinate, cost int64)

	// OnCorner is called when a corner is appended to VisitedCorners.
	OnCorner func(c gridgraph.Coordinate)

	// MaxCost stops the search once a popped cost exceeds it.
	// Default math.MaxInt64 (no cap).
	MaxCost int64

	err error
}

// DefaultOptions returns Options with no-op hooks and no cost cap.
func DefaultOptions() Options {
	return Options{
		OnDequeue: func(gridgraph.Coordinate, int64) {},
		OnCorner:  func(gridgraph.Coordinate) {},
		MaxCost:   math.MaxInt64,
	}
}

// WithOnDequeue registers a callback run on each frontier pop.
func WithOnDequeue(fn func(c gridgraph.Coordinate, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnCorner registers a callback run each time a corner is recorded.
func WithOnCorner(fn func(c gridgraph.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCorner = fn
		}
	}
}

// WithMaxCost caps the explored cost. Cells whose best cost exceeds limit
// are never expanded, so an end beyond the cap is reported Unreachable.
// A negative limit is recorded as ErrOptionViolation.
func WithMaxCost(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxCost = limit
	}
}
