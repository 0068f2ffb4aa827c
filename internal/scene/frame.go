package scene

import (
	"fmt"
	"image/color"

	"isomap/internal/contour"
	"isomap/internal/geom"
)

// Isoline is one extracted level: a point pool indexed by slot and the slot
// pairs forming its segments.
type Isoline struct {
	Value    float64
	Pool     [][2]float64
	Segments []uint32
}

// SegmentCount is len(Segments)/2.
func (l Isoline) SegmentCount() int { return len(l.Segments) / 2 }

// Chains joins the segments into slot sequences.
func (l Isoline) Chains() [][]uint32 { return contour.Chain(l.Segments) }

// Frame is everything a sink needs to draw one time step. Positions and pool
// points are in render space, [-1, 1] on both axes.
type Frame struct {
	WRes, HRes int
	Time       float64
	Domain     geom.BBox

	Positions [][2]float64
	Colors    []color.RGBA
	Indices   []uint32

	// Rebuilt is set on the first frame after the buffers were reallocated.
	Rebuilt bool

	Isolines []Isoline
}

// TriangleCount is len(Indices)/3.
func (f *Frame) TriangleCount() int { return len(f.Indices) / 3 }

// ToDomain maps a render-space point back into field coordinates.
func (f *Frame) ToDomain(p [2]float64) [2]float64 {
	cx, cy := f.Domain.Center()
	return [2]float64{
		cx + p[0]*f.Domain.Width()/2,
		cy + p[1]*f.Domain.Height()/2,
	}
}

// Polylines returns the chained isoline points of level k in field
// coordinates.
func (f *Frame) Polylines(k int) [][][2]float64 {
	l := f.Isolines[k]
	lines := contour.Resolve(l.Pool, l.Chains())
	for _, ln := range lines {
		for i, p := range ln {
			ln[i] = f.ToDomain(p)
		}
	}
	return lines
}

// Data collects the isolines of f into an export container, one layer per
// level.
func (f *Frame) Data() (geom.Data, error) {
	if len(f.Isolines) == 0 {
		return geom.Data{}, ErrNoIsolines
	}
	var d geom.Data
	for k, l := range f.Isolines {
		d.AddLayer(fmt.Sprintf("isoline %g", l.Value), l.Value, f.Polylines(k))
	}
	if _, _, n := d.Counts(); n == 0 {
		d.BBox = f.Domain
	}
	return d, nil
}

// Sink consumes frames, such as a renderer or an exporter.
type Sink interface {
	Present(*Frame) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(*Frame) error

// Present implements Sink.
func (fn SinkFunc) Present(f *Frame) error { return fn(f) }
