package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/robopath/dijkstra"
	"github.com/katalvlaran/robopath/gridgraph"
	"github.com/katalvlaran/robopath/internal/config"
	"github.com/katalvlaran/robopath/internal/storage"
	"github.com/katalvlaran/robopath/report"
)

var (
	flagSize    int
	flagStart   string
	flagEnd     string
	flagSeed    int64
	flagMinCost int64
	flagMaxCost int64
	flagFormat  string
	flagTrace   bool
	flagNoSave  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a random grid and find the cheapest path",
	Long: `Builds an n×n grid with random costs, searches from start to end and
prints the report. Flags override the loaded configuration.

Examples:
  robopath run
  robopath run --size 4 --start 0,0 --end 3,3 --seed 42
  robopath run --format yaml --no-save`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagSize, "size", 0, "Grid size n (n×n)")
	runCmd.Flags().StringVar(&flagStart, "start", "", "Start cell as row,col")
	runCmd.Flags().StringVar(&flagEnd, "end", "", "End cell as row,col")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	runCmd.Flags().Int64Var(&flagMinCost, "min-cost", 0, "Lowest cell cost")
	runCmd.Flags().Int64Var(&flagMaxCost, "max-cost", 0, "Highest cell cost")
	runCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: text or yaml")
	runCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log every frontier pop at debug level")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the history database")
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := applyRunFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flagTrace {
		logger.SetLevel(log.DebugLevel)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	costs, err := gridgraph.UniformCost(rand.New(rand.NewSource(seed)), cfg.MinCost, cfg.MaxCost)
	if err != nil {
		return err
	}
	g, err := gridgraph.New(cfg.Size, costs)
	if err != nil {
		return err
	}
	logger.Debug("grid generated", "size", cfg.Size, "seed", seed)

	start, end := cfg.StartCoord(), cfg.EndCoord()
	res, err := search(g, start, end)
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), cfg.Format, report.Build(g, start, end, res)); err != nil {
		return err
	}

	if flagNoSave {
		return nil
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Size:      g.Size(),
		Start:     start,
		End:       end,
		Seed:      seed,
		Costs:     g.Rows(),
		Found:     res.Found(),
		TotalCost: res.TotalCost,
		Steps:     res.Steps(),
		Corners:   res.VisitedCorners,
	})
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id, "db", cfg.DBPath)

	return nil
}

// applyRunFlags copies explicitly set run flags over c.
func applyRunFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("size") {
		c.Size = flagSize
	}
	if flags.Changed("start") {
		p, err := parseCoord(flagStart)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		c.Start = p
	}
	if flags.Changed("end") {
		p, err := parseCoord(flagEnd)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		c.End = p
	}
	if flags.Changed("seed") {
		c.Seed = flagSeed
	}
	if flags.Changed("min-cost") {
		c.MinCost = flagMinCost
	}
	if flags.Changed("max-cost") {
		c.MaxCost = flagMaxCost
	}
	if flags.Changed("format") {
		c.Format = flagFormat
	}
	return nil
}

// search runs the engine, routing hooks to the logger.
func search(g *gridgraph.GridGraph, start, end gridgraph.Coordinate) (dijkstra.Result, error) {
	var opts []dijkstra.Option
	if flagTrace {
		opts = append(opts,
			dijkstra.WithOnDequeue(func(c gridgraph.Coordinate, cost int64) {
				logger.Debug("pop", "cell", c, "cost", cost)
			}),
			dijkstra.WithOnCorner(func(c gridgraph.Coordinate) {
				logger.Debug("corner", "cell", c)
			}),
		)
	}

	began := time.Now()
	res, err := dijkstra.FindOptimalPath(g, start, end, opts...)
	if err != nil {
		return dijkstra.Result{}, err
	}
	if res.Found() {
		logger.Info("search finished", "cost", res.TotalCost, "steps", res.Steps(),
			"corners", len(res.VisitedCorners), "took", time.Since(began))
	} else {
		logger.Warn("no path found", "start", start, "end", end)
	}

	return res, nil
}

func writeReport(w io.Writer, format string, rep report.Report) error {
	switch format {
	case config.FormatYAML:
		return report.WriteYAML(w, rep)
	default:
		return report.WriteText(w, rep)
	}
}
