//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"lifegrid/internal/app"
)

// guiCmd opens the interactive window
var guiCmd = &cobra.Command{
	Use:   "gui [rows] [cols]",
	Short: "Open the interactive editor and animation window",
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

		game := app.New(s)
		w, h := app.ScreenSize(s)

		ebiten.SetWindowTitle(fmt.Sprintf("lifegrid: %s %dx%d", s.Grid.Name(), s.Grid.Size().H, s.Grid.Size().W))
		ebiten.SetWindowSize(w, h)

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	},
}

func init() {
	bindSessionFlags(guiCmd)
}
