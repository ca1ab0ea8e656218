package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillGridLines draws one-pixel cell borders into a transparent RGBA buffer
// covering rows x cols cells of cellSize pixels each.
func fillGridLines(buf []byte, rows, cols, cellSize int, line color.Color) {
	for i := range buf {
		buf[i] = 0
	}
	if cellSize <= 0 {
		return
	}
	r, g, b, a := line.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	w, h := cols*cellSize, rows*cellSize
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%cellSize != 0 && y%cellSize != 0 {
				continue
			}
			copy(buf[(y*w+x)*4:], px[:])
		}
	}
}
