package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"isomap/internal/render"
)

// screenXYMicro maps a render-space point into a 2x4 microgrid per cell,
// y up.
func screenXYMicro(p [2]float64, w, h int) (int, int) {
	mx := (p[0] + 1) / 2 * float64(w*2-1)
	my := (1 - (p[1]+1)/2) * float64(h*4-1)
	return int(math.Round(mx)), int(math.Round(my))
}

// isolineOverlay rasterizes every segment of the active levels.
func (m Model) isolineOverlay(w, h int) *brailleBuf {
	br := newBrailleBuf(w, h)
	if m.frame == nil {
		return br
	}
	for k, l := range m.frame.Isolines {
		for i := 0; i+1 < len(l.Segments); i += 2 {
			x0, y0 := screenXYMicro(l.Pool[l.Segments[i]], w, h)
			x1, y1 := screenXYMicro(l.Pool[l.Segments[i+1]], w, h)
			br.drawLineMicro(x0, y0, x1, y1, k)
		}
	}
	return br
}

// fitAspect returns the largest w×h cell viewport, at most maxW×maxH, that
// shows a domain of the given width/height ratio undistorted. Cells are two
// samples tall, so one row covers twice the height of a column's width.
func fitAspect(maxW, maxH int, aspect float64) (w, h int) {
	if maxW < 1 || maxH < 1 {
		return 0, 0
	}
	if !(aspect > 0) || math.IsInf(aspect, 0) {
		return maxW, maxH
	}
	w = min(maxW, int(math.Round(2*float64(maxH)*aspect)))
	h = min(maxH, int(math.Round(float64(maxW)/aspect/2)))
	return max(w, 1), max(h, 1)
}

// cellColors returns the colors of the upper and lower half of cell (x, y)
// in a w×h raster.
func (m Model) cellColors(x, y, w, h int) (top, bot color.RGBA) {
	g := m.scene.Grid()
	cmap := g.ColorMap()
	u := (float64(x) + 0.5) / float64(w)
	fh := float64(2 * h)
	// screen rows grow downward while v grows toward MaxY
	top = cmap(g.Interpolate(u, 1-(float64(2*y)+0.5)/fh))
	bot = cmap(g.Interpolate(u, 1-(float64(2*y)+1.5)/fh))
	return top, bot
}

// renderField draws the field as half-block cells, two samples per cell,
// with isolines overlaid in braille on top.
func (m Model) renderField(w, h int) string {
	if m.frame == nil || w < 1 || h < 1 {
		return ""
	}
	br := m.isolineOverlay(w, h)

	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top, bot := m.cellColors(x, y, w, h)
			if r, tag, ok := br.at(x, y); ok {
				c := render.Palette[tag%len(render.Palette)]
				st := lipgloss.NewStyle().Foreground(hexColor(c)).Background(hexColor(meanRGBA(top, bot)))
				sb.WriteString(st.Render(string(r)))
				continue
			}
			st := lipgloss.NewStyle().Foreground(hexColor(top)).Background(hexColor(bot))
			sb.WriteString(st.Render("▀"))
		}
		if y < h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
