package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/routeforge/dimacspath/dimacsparser"
	"github.com/routeforge/dimacspath/result"
	"github.com/routeforge/dimacspath/search"
)

const (
	algoAStar    = "astar"
	algoDijkstra = "dijkstra"
	algoBoth     = "both"

	unitDecimeters = "decimeters"
	unitMeters     = "meters"
)

type rootFlags struct {
	algorithm     string
	heuristicUnit string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "dimacspath <start_1based> <goal_1based> <basename> <output_path>",
		Short: "Shortest path search over a DIMACS road-network dataset",
		Args:  exactlyFourArgsWithParsableIDs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.algorithm {
			case algoAStar, algoDijkstra, algoBoth:
			default:
				return fmt.Errorf("--algorithm must be one of %s, %s, %s (got %q)", algoAStar, algoDijkstra, algoBoth, flags.algorithm)
			}
			switch flags.heuristicUnit {
			case unitDecimeters, unitMeters:
			default:
				return fmt.Errorf("--heuristic-unit must be one of %s, %s (got %q)", unitDecimeters, unitMeters, flags.heuristicUnit)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flags.algorithm, "algorithm", algoAStar, "which search to run: astar, dijkstra, or both")
	cmd.Flags().StringVar(&flags.heuristicUnit, "heuristic-unit", unitDecimeters, "arc weight unit, for heuristic calibration: decimeters or meters")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log per-pass parser progress and per-run search timing")

	return cmd
}

// exactlyFourArgsWithParsableIDs enforces the 4-positional-argument surface
// and parses start/goal early, so a malformed id fails before the dataset is
// ever opened.
func exactlyFourArgsWithParsableIDs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(4)(cmd, args); err != nil {
		return err
	}
	if _, err := strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("start_1based: %w", err)
	}
	if _, err := strconv.Atoi(args[1]); err != nil {
		return fmt.Errorf("goal_1based: %w", err)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string, flags *rootFlags) error {
	start1, _ := strconv.Atoi(args[0])
	goal1, _ := strconv.Atoi(args[1])
	basename := args[2]
	outputPath := args[3]

	logger := newLogger(flags.verbose)

	if err := statDataset(basename); err != nil {
		return err
	}

	progress := func(stage string, n, total int) {
		logger.Debug("parse progress", "stage", stage, "n", n, "total", total)
	}
	g, err := dimacsparser.Parse(basename, dimacsparser.WithProgress(progress))
	if err != nil {
		return fmt.Errorf("parsing dataset %q: %w", basename, err)
	}
	logger.Info("dataset loaded", "vertices", g.N(), "arcs", g.M())

	start, goal := int32(start1-1), int32(goal1-1)
	profile := search.DefaultHeuristicProfile()
	if flags.heuristicUnit == unitMeters {
		profile = search.MetersHeuristicProfile()
	}

	engine := search.NewEngine(g)

	var chosen result.Result
	switch flags.algorithm {
	case algoAStar:
		chosen, err = engine.Run(start, goal, profile)
		if err != nil {
			return err
		}
		logRun(logger, "astar", chosen)
	case algoDijkstra:
		chosen, err = engine.RunDijkstra(start, goal)
		if err != nil {
			return err
		}
		logRun(logger, "dijkstra", chosen)
	case algoBoth:
		astarResult, err := engine.Run(start, goal, profile)
		if err != nil {
			return err
		}
		dijkstraResult, err := engine.RunDijkstra(start, goal)
		if err != nil {
			return err
		}
		cmp := result.Comparison{AStar: astarResult, Dijkstra: dijkstraResult}
		logRun(logger, "astar", cmp.AStar)
		logRun(logger, "dijkstra", cmp.Dijkstra)
		if !cmp.CostsAgree() {
			logger.Warn("astar and dijkstra costs disagree", "astar_cost", cmp.AStar.Cost, "dijkstra_cost", cmp.Dijkstra.Cost)
		}
		chosen = cmp.AStar
	}

	if !chosen.Reached() {
		logger.Info("no path found", "start", start1, "goal", goal1)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(chosen.Format1Based()+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing output file %q: %w", outputPath, err)
	}
	return nil
}

func logRun(logger *slog.Logger, label string, r result.Result) {
	logger.Debug("search finished", "algorithm", label, "reached", r.Reached(), "cost", r.Cost, "expansions", r.Expansions, "elapsed_ms", r.ElapsedMS)
}

func statDataset(basename string) error {
	for _, suffix := range []string{".gr", ".co"} {
		path := basename + suffix
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %s", dimacsparser.ErrIoOpenFailed, path)
		}
	}
	return nil
}
