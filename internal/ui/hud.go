//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight   = 14
	panelPadding = 6
)

// PanelHeight returns the pixel height of a HUD strip with room for n lines.
func PanelHeight(n int) int { return n*lineHeight + 2*panelPadding }

// HUD renders the status strip below the simulation view.
type HUD struct {
	sim   core.ParameterProvider
	width int
	panel *ebiten.Image
	lines []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached status lines.
func (h *HUD) Update(st Status) {
	if h == nil {
		return
	}
	h.lines = append(StatusLines(h.sim.Parameters(), st), Help)
}

// Draw paints the HUD strip at vertical offset offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil || h.width <= 0 || len(h.lines) == 0 {
		return
	}
	height := PanelHeight(len(h.lines))
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
