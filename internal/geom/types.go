package geom

import "math"

// BBox is an axis-aligned rectangle in domain coordinates.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box has positive, finite extent on both axes.
func (b BBox) Valid() bool {
	w, h := b.MaxX-b.MinX, b.MaxY-b.MinY
	return w > 0 && h > 0 && !math.IsInf(w, 0) && !math.IsInf(h, 0)
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b BBox) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Extend grows the box to include pt.
func (b BBox) Extend(pt [2]float64) BBox {
	if pt[0] < b.MinX {
		b.MinX = pt[0]
	}
	if pt[1] < b.MinY {
		b.MinY = pt[1]
	}
	if pt[0] > b.MaxX {
		b.MaxX = pt[0]
	}
	if pt[1] > b.MaxY {
		b.MaxY = pt[1]
	}
	return b
}

// Layer is one group of polylines sharing a contour value.
type Layer struct {
	Name  string
	Value float64
	Lines [][][2]float64
}

// Data is a minimal polyline container for export
type Data struct {
	Layers []Layer
	BBox   BBox
	n      int // vertices seen, for bbox seeding
}

// AddLayer appends a layer and grows the bbox over its vertices.
func (d *Data) AddLayer(name string, value float64, lines [][][2]float64) {
	d.Layers = append(d.Layers, Layer{Name: name, Value: value, Lines: lines})
	for _, ls := range lines {
		for _, p := range ls {
			if d.n == 0 {
				d.BBox = BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
			} else {
				d.BBox = d.BBox.Extend(p)
			}
			d.n++
		}
	}
}

// Counts returns the number of layers, polylines and vertices.
func (d Data) Counts() (layers, lines, vertices int) {
	for _, l := range d.Layers {
		lines += len(l.Lines)
		for _, ls := range l.Lines {
			vertices += len(ls)
		}
	}
	return len(d.Layers), lines, vertices
}
