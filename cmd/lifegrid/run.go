package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lifegrid/internal/app"
	"lifegrid/internal/life"
	"lifegrid/internal/render"
)

var (
	generations int  // Generations to simulate
	load        bool // Restore the save file before running
	writeSave   bool // Write the save file after running
	printEvery  int  // Print the board every N generations
)

// runCmd advances the grid without a window and prints it as text
var runCmd = &cobra.Command{
	Use:   "run [rows] [cols]",
	Short: "Run the simulation headless and print the final board",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := sessionConfig(cmd, args)
		if err != nil {
			return err
		}
		s, err := app.NewSession(cfg)
		if err != nil {
			return err
		}
		if load {
			if err := s.Load(); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		_, cols := s.Grid.Dimensions()
		err = s.Loop.Run(ctx, generations, func(life.Delta) {
			if printEvery > 0 && s.Grid.Generation()%printEvery == 0 {
				fmt.Fprintf(out, "generation %d\n", s.Grid.Generation())
				render.WriteText(out, s.Grid.Cells(), cols)
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		fmt.Fprintf(out, "%s generation %d population %d\n", s.Grid.Name(), s.Grid.Generation(), s.Grid.Population())
		if err := render.WriteText(out, s.Grid.Cells(), cols); err != nil {
			return err
		}
		if writeSave {
			if err := s.Save(); err != nil {
				return err
			}
			logrus.Infof("saved %d live cells to %s", s.Grid.Population(), s.Store.Path)
		}
		return nil
	},
}

func init() {
	bindSessionFlags(runCmd)
	runCmd.Flags().IntVarP(&generations, "generations", "n", 100, "Generations to simulate (0 runs until interrupted or stable)")
	runCmd.Flags().BoolVar(&load, "load", false, "Restore the save file before running")
	runCmd.Flags().BoolVar(&writeSave, "write-save", false, "Write the save file after running")
	runCmd.Flags().IntVar(&printEvery, "print-every", 0, "Print the board every N generations")
}
