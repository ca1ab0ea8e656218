package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lifegrid/internal/sweep"
	"lifegrid/internal/topology"
)

var sweepOpts = sweep.Options{Rows: 64, Cols: 64, Density: 0.25, FirstSeed: 1, Runs: 32, Generations: 500}

var (
	sweepBoundary string
	sweepTop      int
)

// sweepCmd evaluates many random soups across a worker pool
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run many random soups in parallel and report the longest-lived",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := topology.ParseBoundary(sweepBoundary)
		if err != nil {
			return err
		}
		opts := sweepOpts
		opts.Boundary = b

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sweeping %d soups (%d workers, %d generations, %dx%d %s)\n",
			opts.Runs, opts.Workers, opts.Generations, opts.Rows, opts.Cols, opts.Boundary)

		start := time.Now()
		results, err := sweep.Run(opts)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		extinct := 0
		for _, r := range results {
			if r.Extinct() {
				extinct++
			}
		}
		logrus.Infof("sweep finished in %s", elapsed.Round(time.Millisecond))

		fmt.Fprintf(out, "\nTop %d results (elapsed %s, %d/%d extinct):\n",
			min(sweepTop, len(results)), elapsed.Round(time.Millisecond), extinct, len(results))
		for i := 0; i < len(results) && i < sweepTop; i++ {
			fmt.Fprintf(out, "%2d) %s\n", i+1, results[i])
		}
		return nil
	},
}

func init() {
	f := sweepCmd.Flags()
	f.IntVar(&sweepOpts.Rows, "rows", sweepOpts.Rows, "Grid rows")
	f.IntVar(&sweepOpts.Cols, "cols", sweepOpts.Cols, "Grid columns")
	f.StringVar(&sweepBoundary, "boundary", topology.Periodic.String(), "Boundary policy (periodic, finite)")
	f.Float64Var(&sweepOpts.Density, "density", sweepOpts.Density, "Live-cell probability")
	f.Int64Var(&sweepOpts.FirstSeed, "seed", sweepOpts.FirstSeed, "First seed (at least 1; seed 0 is the empty grid)")
	f.IntVar(&sweepOpts.Runs, "runs", sweepOpts.Runs, "Number of soups")
	f.IntVar(&sweepOpts.Generations, "generations", sweepOpts.Generations, "Generations per soup")
	f.IntVar(&sweepOpts.Workers, "workers", runtime.NumCPU(), "Number of worker goroutines")
	f.IntVar(&sweepTop, "top", 5, "Results to print")
}
