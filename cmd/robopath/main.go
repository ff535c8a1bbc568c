// robopath finds the cheapest route for a robot across a random cost grid.
//
// Usage:
//
//	robopath run             - Generate a grid, search it and print the report
//	robopath history         - List recently stored runs
//	robopath show <id>       - Re-run a stored grid and print its report
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.robopath/config.yaml, ./configs/robopath.yaml)
//	--db <path>         - Run history database (default: ~/.robopath/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/robopath/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Populated by loadConfig before any subcommand runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "robopath",
	Short: "Robopath - cheapest robot routes across cost grids",
	Long: `Robopath builds a square grid of traversal costs, finds the cheapest
four-directional route between two cells and reports the path, its cost
and the grid corners explored on the way.

Available commands:
  run      - Generate a grid and search it
  history  - Show recent runs
  show     - Replay a stored run

Examples:
  robopath run
  robopath run --size 5 --start 0,0 --end 4,4 --seed 7
  robopath history --limit 5
  robopath show 3 --format yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
}

// loadConfig reads the config file, applies persistent flag overrides and
// builds the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		loaded.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.LogLevel = flagLogLevel
	}
	cfg = loaded

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "robopath",
		Level:           level,
	})
	logger.Debug("config loaded", "path", flagConfig, "db", cfg.DBPath)

	return nil
}
