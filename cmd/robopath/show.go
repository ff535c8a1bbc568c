package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/robopath/gridgraph"
	"github.com/katalvlaran/robopath/internal/config"
	"github.com/katalvlaran/robopath/internal/storage"
	"github.com/katalvlaran/robopath/report"
)

var flagShowFormat string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Replay a stored run",
	Long: `Loads the grid of a stored run, searches it again and prints the report.
The replayed cost must match the recorded one.

Examples:
  robopath show 1
  robopath show 1 --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagShowFormat, "format", "", "Output format: text or yaml")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", args[0], err)
	}
	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format = flagShowFormat
	}
	if format != config.FormatText && format != config.FormatYAML {
		return fmt.Errorf("%w: unknown format %q", config.ErrInvalid, format)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(id)
	if err != nil {
		return err
	}

	g, err := gridgraph.FromRows(run.Costs)
	if err != nil {
		return fmt.Errorf("run %d: stored grid: %w", id, err)
	}
	res, err := search(g, run.Start, run.End)
	if err != nil {
		return err
	}
	if res.Found() != run.Found || (res.Found() && res.TotalCost != run.TotalCost) {
		return fmt.Errorf("run %d: replayed cost %d differs from recorded %d", id, res.TotalCost, run.TotalCost)
	}
	logger.Debug("replay matches record", "id", id, "seed", run.Seed)

	return writeReport(cmd.OutOrStdout(), format, report.Build(g, run.Start, run.End, res))
}
