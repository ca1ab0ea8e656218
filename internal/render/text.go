package render

import (
	"io"
	"strings"
)

// Text glyphs used by WriteText.
const (
	LiveGlyph = '#'
	DeadGlyph = '.'
)

// WriteText prints cells as rows of glyphs, one line per grid row.
func WriteText(w io.Writer, cells []uint8, cols int) error {
	if cols <= 0 {
		return nil
	}
	var sb strings.Builder
	sb.Grow(len(cells) + len(cells)/cols)
	for i, c := range cells {
		if c != 0 {
			sb.WriteByte(LiveGlyph)
		} else {
			sb.WriteByte(DeadGlyph)
		}
		if (i+1)%cols == 0 {
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
