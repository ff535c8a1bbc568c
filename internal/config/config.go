// Package config provides YAML-based run configuration for robopath:
// grid size, start and end cells, terrain cost range, seed, output format,
// storage path and log level.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/robopath/gridgraph"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds everything a run needs besides the grid itself.
type Config struct {
	Size     int    `yaml:"size"`
	Start    [2]int `yaml:"start,flow"`
	End      [2]int `yaml:"end,flow"`
	Seed     int64  `yaml:"seed"` // 0 = derive from the clock
	MinCost  int64  `yaml:"min_cost"`
	MaxCost  int64  `yaml:"max_cost"`
	DBPath   string `yaml:"db_path"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// StartCoord returns Start as a grid coordinate.
func (c Config) StartCoord() gridgraph.Coordinate {
	return gridgraph.At(c.Start[0], c.Start[1])
}

// EndCoord returns End as a grid coordinate.
func (c Config) EndCoord() gridgraph.Coordinate {
	return gridgraph.At(c.End[0], c.End[1])
}

// Validate checks that the configuration describes a runnable search.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalid, c.Size)
	}
	inBounds := func(p [2]int) bool {
		return p[0] >= 0 && p[0] < c.Size && p[1] >= 0 && p[1] < c.Size
	}
	if !inBounds(c.Start) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalid, c.Start, c.Size, c.Size)
	}
	if !inBounds(c.End) {
		return fmt.Errorf("%w: end %v outside %dx%d grid", ErrInvalid, c.End, c.Size, c.Size)
	}
	if c.MinCost < 1 || c.MaxCost < c.MinCost {
		return fmt.Errorf("%w: cost range must satisfy 1 <= min_cost <= max_cost, got [%d,%d]",
			ErrInvalid, c.MinCost, c.MaxCost)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}

	return nil
}
