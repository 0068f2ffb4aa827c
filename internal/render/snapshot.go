// Package render draws scene frames offscreen with gg and writes them as PNG.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"isomap/internal/geom"
	"isomap/internal/scene"
)

// MaxSize bounds either side of a snapshot, in pixels.
const MaxSize = 8192

// Palette is the default stroke color cycle for isolines, one per level.
// None of them is on the red-blue ramp of the field.
var Palette = []color.RGBA{
	colornames.White,
	colornames.Yellow,
	colornames.Lime,
	colornames.Cyan,
	colornames.Magenta,
	colornames.Orange,
	colornames.Black,
}

// Snapshot is a scene.Sink that renders each frame to a PNG file.
type Snapshot struct {
	Width, Height int
	Path          string

	// LineWidth of the isoline strokes; 2 when zero.
	LineWidth float64
	// Palette overrides the package Palette when set.
	Palette []color.RGBA
}

var _ scene.Sink = (*Snapshot)(nil)

// HeightFor is the image height that keeps the aspect ratio of domain at the
// given width, so the field is not stretched.
func HeightFor(width int, domain geom.BBox) int {
	if !domain.Valid() {
		return width
	}
	return max(1, int(math.Round(float64(width)*domain.Height()/domain.Width())))
}

func (s *Snapshot) validate() error {
	if s.Width < 1 || s.Height < 1 || s.Width > MaxSize || s.Height > MaxSize {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	return nil
}

// StrokeColor returns the stroke color of level k.
func (s *Snapshot) StrokeColor(k int) color.RGBA {
	p := s.Palette
	if len(p) == 0 {
		p = Palette
	}
	return p[k%len(p)]
}

// pixel maps render space to image space, y up.
func (s *Snapshot) pixel(p [2]float64) (float64, float64) {
	return (p[0] + 1) / 2 * float64(s.Width), (1 - (p[1]+1)/2) * float64(s.Height)
}

// Draw renders f into a new context. The caller closes it.
func (s *Snapshot) Draw(f *scene.Frame) (*gg.Context, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if f == nil || len(f.Indices)%3 != 0 {
		return nil, ErrBadFrame
	}
	dc := gg.NewContext(s.Width, s.Height)
	dc.ClearWithColor(gg.Black)

	// each triangle takes the mean of its vertex colors; the hairline
	// stroke closes antialiasing seams between neighbours
	dc.SetLineWidth(1)
	for t := 0; t+2 < len(f.Indices); t += 3 {
		a, b, c := f.Indices[t], f.Indices[t+1], f.Indices[t+2]
		dc.SetColor(mean(f.Colors[a], f.Colors[b], f.Colors[c]))
		dc.MoveTo(s.pixel(f.Positions[a]))
		dc.LineTo(s.pixel(f.Positions[b]))
		dc.LineTo(s.pixel(f.Positions[c]))
		dc.ClosePath()
		if err := dc.FillPreserve(); err != nil {
			dc.Close()
			return nil, err
		}
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, err
		}
	}

	lw := s.LineWidth
	if lw <= 0 {
		lw = 2
	}
	dc.SetLineWidth(lw)
	dc.SetLineCap(gg.LineCapRound)
	for k, l := range f.Isolines {
		if l.SegmentCount() == 0 {
			continue
		}
		dc.SetColor(s.StrokeColor(k))
		for i := 0; i+1 < len(l.Segments); i += 2 {
			dc.MoveTo(s.pixel(l.Pool[l.Segments[i]]))
			dc.LineTo(s.pixel(l.Pool[l.Segments[i+1]]))
		}
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

// Encode draws f and writes it to w as PNG.
func (s *Snapshot) Encode(w io.Writer, f *scene.Frame) error {
	dc, err := s.Draw(f)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// Present implements scene.Sink by writing the frame to s.Path.
func (s *Snapshot) Present(f *scene.Frame) error {
	if s.Path == "" {
		return ErrNoPath
	}
	dc, err := s.Draw(f)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(s.Path); err != nil {
		return fmt.Errorf("render: save %s: %w", s.Path, err)
	}
	scene.Logger().Info("snapshot written",
		"path", s.Path, "size", fmt.Sprintf("%dx%d", s.Width, s.Height),
		"t", f.Time, "isolines", len(f.Isolines))
	return nil
}

func mean(a, b, c color.RGBA) color.RGBA {
	avg := func(x, y, z uint8) uint8 { return uint8((uint16(x) + uint16(y) + uint16(z) + 1) / 3) }
	return color.RGBA{R: avg(a.R, b.R, c.R), G: avg(a.G, b.G, c.G), B: avg(a.B, b.B, c.B), A: avg(a.A, b.A, c.A)}
}
