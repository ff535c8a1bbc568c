package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/robopath/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently stored runs",
	Long: `Lists the most recent runs recorded by 'robopath run', newest first.

Examples:
  robopath history
  robopath history --limit 3`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'robopath run' to record the first one.")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-5s  %-9s  %-9s  %-6s  %-5s  %s\n", "ID", "Size", "Start", "End", "Cost", "Steps", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-9s  %-9s  %-6s  %-5s  %s\n", "--", "----", "-----", "---", "----", "-----", "----")

	for _, r := range runs {
		cost := "-"
		if r.Found {
			cost = fmt.Sprintf("%d", r.TotalCost)
		}
		fmt.Fprintf(out, "  %-4d  %-5s  %-9s  %-9s  %-6s  %-5d  %s\n",
			r.ID, fmt.Sprintf("%dx%d", r.Size, r.Size), r.Start, r.End, cost, r.Steps,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
