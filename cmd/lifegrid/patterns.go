package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifegrid/internal/core"
	"lifegrid/internal/editor"
	"lifegrid/internal/life"
	"lifegrid/internal/render"
)

// patternsCmd lists the built-in patterns and draws each one
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in stamp patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range life.PatternNames() {
			p, err := life.LookupPattern(name)
			if err != nil {
				return err
			}
			tool, err := editor.ParseTool(name)
			if err != nil {
				return err
			}
			rows, cols := p.Bounds()
			fmt.Fprintf(out, "%s (tool %s, %d cells, %dx%d)\n", name, tool, len(p.Offsets), rows, cols)
			cells := make([]uint8, rows*cols)
			d := core.Dims{Rows: rows, Cols: cols}
			for _, o := range p.Offsets {
				cells[d.Index(o.Row, o.Col)] = 1
			}
			if err := render.WriteText(out, cells, cols); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
