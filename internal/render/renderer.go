//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	lines *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of rows x cols cells drawn
// cellSize pixels wide.
func NewGridPainter(rows, cols, cellSize int, line color.Color) *GridPainter {
	gp := &GridPainter{w: cols, h: rows, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	if cellSize > 1 {
		lineBuf := make([]byte, 4*rows*cellSize*cols*cellSize)
		fillGridLines(lineBuf, rows, cols, cellSize, line)
		gp.lines = ebiten.NewImage(cols*cellSize, rows*cellSize)
		gp.lines.WritePixels(lineBuf)
	}
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines draws the cell borders over dst.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image) {
	if gp.lines == nil {
		return
	}
	dst.DrawImage(gp.lines, nil)
}
