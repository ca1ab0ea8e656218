package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lifegrid/internal/config"
	"lifegrid/internal/topology"
)

var (
	logLevel   string // Log verbosity level
	configPath string // Optional YAML session file

	cellSize int      // Display size of one cell in pixels
	boundary string   // periodic or finite
	delayMS  int      // Minimum milliseconds between generations
	seed     int64    // Random soup seed; 0 starts empty
	density  float64  // Live-cell probability for the random soup
	savePath string   // Save file location
	stamps   []string // pattern@row,col placements
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lifegrid",
	Short: "Conway's Game of Life on a periodic or finite grid",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd, guiCmd, sweepCmd, patternsCmd)
}

// bindSessionFlags registers the flags shared by commands that build a session.
func bindSessionFlags(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().StringVar(&configPath, "config", "", "YAML session file")
	cmd.Flags().IntVarP(&cellSize, "cell-size", "c", def.CellSize, "Side length of a cell in pixels")
	cmd.Flags().StringVar(&boundary, "boundary", def.Boundary.String(), "Boundary policy (periodic, finite)")
	cmd.Flags().IntVar(&delayMS, "delay", def.DelayMS, "Minimum milliseconds between generations")
	cmd.Flags().Int64Var(&seed, "seed", def.Seed, "Random soup seed (0 starts with an empty grid)")
	cmd.Flags().Float64Var(&density, "density", def.Density, "Live-cell probability for the random soup")
	cmd.Flags().StringVar(&savePath, "save", def.SavePath, "Save file path")
	cmd.Flags().StringSliceVar(&stamps, "stamp", nil, "Place a pattern at start, as name@row,col (repeatable)")
}

// sessionConfig merges defaults, the optional config file, positional
// [rows] [cols] arguments and explicitly set flags, in that order.
func sessionConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		if f := cmd.Flags().Lookup("log"); f == nil || !f.Changed {
			if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
				logrus.SetLevel(level)
			}
		}
	}
	if len(args) > 0 {
		rows, err := strconv.Atoi(args[0])
		if err != nil {
			return cfg, fmt.Errorf("rows %q: %w", args[0], err)
		}
		cfg.Rows = rows
	}
	if len(args) > 1 {
		cols, err := strconv.Atoi(args[1])
		if err != nil {
			return cfg, fmt.Errorf("cols %q: %w", args[1], err)
		}
		cfg.Cols = cols
	}

	flags := cmd.Flags()
	if flags.Changed("cell-size") {
		cfg.CellSize = cellSize
	}
	if flags.Changed("boundary") {
		b, err := topology.ParseBoundary(boundary)
		if err != nil {
			return cfg, err
		}
		cfg.Boundary = b
	}
	if flags.Changed("delay") {
		cfg.DelayMS = delayMS
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("save") {
		cfg.SavePath = savePath
	}
	for _, s := range stamps {
		st, err := parseStamp(s)
		if err != nil {
			return cfg, err
		}
		cfg.Stamps = append(cfg.Stamps, st)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logrus.Debugf("session: %dx%d %s delay=%s seed=%d stamps=%d",
		cfg.Rows, cfg.Cols, cfg.Boundary, cfg.Delay(), cfg.Seed, len(cfg.Stamps))
	return cfg, nil
}

// parseStamp reads name@row,col.
func parseStamp(s string) (config.Stamp, error) {
	name, at, ok := strings.Cut(s, "@")
	if !ok {
		return config.Stamp{}, fmt.Errorf("stamp %q: want name@row,col", s)
	}
	rs, cs, ok := strings.Cut(at, ",")
	if !ok {
		return config.Stamp{}, fmt.Errorf("stamp %q: want name@row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return config.Stamp{}, fmt.Errorf("stamp %q row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return config.Stamp{}, fmt.Errorf("stamp %q col: %w", s, err)
	}
	return config.Stamp{Pattern: strings.TrimSpace(name), Row: row, Col: col}, nil
}
