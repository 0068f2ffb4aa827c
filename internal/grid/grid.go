// Package grid tessellates a rectangular domain into a resizable triangle
// grid and keeps the per-vertex field samples and colors up to date.
package grid

import (
	"image/color"
	"math"

	"isomap/internal/field"
	"isomap/internal/geom"
)

// Resolution bounds, in cells per axis.
const (
	MinRes = 2
	MaxRes = 512
)

// Config is the tessellation resolution and the domain it covers.
type Config struct {
	WRes, HRes int
	Domain     geom.BBox
}

// Clamp limits a resolution to [MinRes, MaxRes].
func Clamp(n int) int {
	if n < MinRes {
		return MinRes
	}
	if n > MaxRes {
		return MaxRes
	}
	return n
}

// Grid owns the vertex arrays, the triangle index buffer and the edge slot map.
// Vertices are row-major with stride WRes+1; row 0 lies on Domain.MinY.
//
// Slices returned by accessors are owned by the grid and are only valid until
// the next Resize or SetDomain.
type Grid struct {
	cfg   Config
	field field.Evaluator
	cmap  field.ColorMap
	t     float64

	coords    [][2]float64 // domain space
	positions [][2]float64 // render space, [-1,1] on both axes
	scalars   []float64
	colors    []color.RGBA
	indices   []uint32
	slots     *SlotMap
}

// New builds a grid over cfg.Domain and samples the field at t = 0.
// The resolution is clamped; an invalid domain is rejected.
func New(cfg Config, f field.Evaluator, cmap field.ColorMap) (*Grid, error) {
	if !cfg.Domain.Valid() {
		return nil, ErrInvalidDomain
	}
	if f == nil {
		return nil, ErrNilField
	}
	if cmap == nil {
		cmap = field.RedBlue
	}
	g := &Grid{field: f, cmap: cmap}
	g.cfg.Domain = cfg.Domain
	g.cfg.WRes, g.cfg.HRes = Clamp(cfg.WRes), Clamp(cfg.HRes)
	g.rebuild()
	return g, nil
}

// Resize clamps w and h and re-tessellates when the result differs from the
// current resolution. It reports whether anything was rebuilt.
func (g *Grid) Resize(w, h int) bool {
	w, h = Clamp(w), Clamp(h)
	if w == g.cfg.WRes && h == g.cfg.HRes {
		return false
	}
	g.cfg.WRes, g.cfg.HRes = w, h
	g.rebuild()
	return true
}

// SetDomain moves the grid to new bounds, keeping the resolution.
func (g *Grid) SetDomain(b geom.BBox) error {
	if !b.Valid() {
		return ErrInvalidDomain
	}
	g.cfg.Domain = b
	g.place()
	g.Refresh(g.t)
	return nil
}

func (g *Grid) rebuild() {
	n := g.PointCount()
	g.coords = make([][2]float64, n)
	g.positions = make([][2]float64, n)
	g.scalars = make([]float64, n)
	g.colors = make([]color.RGBA, n)
	g.indices = Indices(g.cfg.WRes, g.cfg.HRes)
	g.slots = NewSlotMap(g.cfg.WRes, g.cfg.HRes)
	g.place()
	g.Refresh(g.t)
}

// place computes domain coordinates and their render-space image.
func (g *Grid) place() {
	d := g.cfg.Domain
	w, h := g.cfg.WRes, g.cfg.HRes
	sizeW, sizeH := d.Width(), d.Height()
	cx, cy := d.Center()
	for i, ptr := 0, 0; i <= h; i++ {
		y := d.MinY + sizeH*float64(i)/float64(h)
		for j := 0; j <= w; j, ptr = j+1, ptr+1 {
			x := d.MinX + sizeW*float64(j)/float64(w)
			g.coords[ptr] = [2]float64{x, y}
			g.positions[ptr] = [2]float64{(x - cx) / sizeW * 2, (y - cy) / sizeH * 2}
		}
	}
}

// Refresh samples the field at time t for every vertex and recolors it.
// Positions and indices are left alone.
func (g *Grid) Refresh(t float64) {
	g.t = t
	for k, p := range g.coords {
		v := g.field.Value(p[0], p[1], t)
		g.scalars[k] = v
		g.colors[k] = g.cmap(v)
	}
}

// Indices builds the triangle index buffer of a w×h grid: two triangles per
// cell, {v(j,i), v(j+1,i), v(j,i+1)} and {v(j+1,i), v(j,i+1), v(j+1,i+1)}.
func Indices(w, h int) []uint32 {
	out := make([]uint32, 0, 6*w*h)
	stride := uint32(w + 1)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			v00 := uint32(i)*stride + uint32(j)
			v10, v01 := v00+1, v00+stride
			v11 := v01 + 1
			out = append(out, v00, v10, v01, v10, v01, v11)
		}
	}
	return out
}

func (g *Grid) Config() Config { return g.cfg }

// Time is the timestamp of the last Refresh.
func (g *Grid) Time() float64 { return g.t }

// PointCount is (WRes+1)·(HRes+1).
func (g *Grid) PointCount() int { return (g.cfg.WRes + 1) * (g.cfg.HRes + 1) }

// Vertex returns the index of vertex (j, i): column j, row i.
func (g *Grid) Vertex(j, i int) int { return i*(g.cfg.WRes+1) + j }

func (g *Grid) Positions() [][2]float64 { return g.positions }
func (g *Grid) Scalars() []float64      { return g.scalars }
func (g *Grid) Colors() []color.RGBA    { return g.colors }
func (g *Grid) Indices() []uint32       { return g.indices }
func (g *Grid) Slots() *SlotMap         { return g.slots }

// ColorMap is the map that produced Colors.
func (g *Grid) ColorMap() field.ColorMap { return g.cmap }

// Range returns the smallest and largest sampled scalar.
func (g *Grid) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.scalars {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Interpolate returns the scalar at normalized domain coordinates (u, v),
// both in [0,1] with v = 0 on Domain.MinY. Values are blended linearly inside
// the same two triangles the index buffer draws, which matches what a
// rasterizer produces for per-vertex colors.
func (g *Grid) Interpolate(u, v float64) float64 {
	w, h := g.cfg.WRes, g.cfg.HRes
	fx := field.Clamp01(u) * float64(w)
	fy := field.Clamp01(v) * float64(h)
	j := min(int(fx), w-1)
	i := min(int(fy), h-1)
	lx, ly := fx-float64(j), fy-float64(i)

	s00 := g.scalars[g.Vertex(j, i)]
	s10 := g.scalars[g.Vertex(j+1, i)]
	s01 := g.scalars[g.Vertex(j, i+1)]
	if lx+ly <= 1 {
		return s00 + lx*(s10-s00) + ly*(s01-s00)
	}
	s11 := g.scalars[g.Vertex(j+1, i+1)]
	return s11 + (1-lx)*(s01-s11) + (1-ly)*(s10-s11)
}
