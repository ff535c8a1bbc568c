package config

import (
	_ "embed"

	"github.com/katalvlaran/robopath/gridgraph"
)

//go:embed defaults/robopath.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 10×10 grid from (2,3) to
// (8,8) with costs drawn from [1,3].
func Default() Config {
	return Config{
		Size:     10,
		Start:    [2]int{2, 3},
		End:      [2]int{8, 8},
		Seed:     0,
		MinCost:  gridgraph.DefaultMinCost,
		MaxCost:  gridgraph.DefaultMaxCost,
		DBPath:   "~/.robopath/runs.db",
		Format:   FormatText,
		LogLevel: "info",
	}
}
