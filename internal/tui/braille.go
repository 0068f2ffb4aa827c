package tui

// brailleBits[row][col] is the dot of a 2×4 braille cell.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type brailleBuf struct {
	w, h int     // in cells
	mask []uint8 // per-cell dot mask
	tag  []int   // per-cell level index of the last dot set, -1 when empty
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h, mask: make([]uint8, w*h), tag: make([]int, w*h)}
	for i := range b.tag {
		b.tag[i] = -1
	}
	return b
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my, tag int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	k := cy*b.w + cx
	b.mask[k] |= brailleBits[my%4][mx%2]
	b.tag[k] = tag
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1, tag int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, tag)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// at returns the glyph and level tag of cell (x, y); ok is false for an
// empty cell.
func (b *brailleBuf) at(x, y int) (r rune, tag int, ok bool) {
	k := y*b.w + x
	if b.mask[k] == 0 {
		return ' ', -1, false
	}
	return rune(0x2800 + int(b.mask[k])), b.tag[k], true
}
