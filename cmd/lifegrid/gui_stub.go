//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// guiCmd explains how to get the windowed build
var guiCmd = &cobra.Command{
	Use:   "gui [rows] [cols]",
	Short: "Open the interactive editor and animation window (requires -tags ebiten)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("the GUI build of lifegrid requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/lifegrid gui`")
	},
}
