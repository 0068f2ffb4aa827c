package grid

import "fmt"

// Edge names one of the five edge slots owned by a cell. Row indices grow
// downward in index space: row i of vertices is a cell's Top side and row i+1
// its Bottom side, so cell (i-1, j) sits above cell (i, j).
type Edge int

const (
	Top      Edge = iota // v(j,i)   – v(j+1,i)
	Left                 // v(j,i)   – v(j,i+1)
	Bottom               // v(j,i+1) – v(j+1,i+1)
	Right                // v(j+1,i) – v(j+1,i+1)
	Diagonal             // v(j+1,i) – v(j,i+1), shared by the cell's two triangles

	EdgesPerCell = 5
)

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	case Diagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// Triangle is one half of a cell: corner vertex indices (A, B, C) and the
// pool slots of its edges AB, BC and CA.
type Triangle struct {
	Corners [3]uint32
	Slots   [3]uint32
}

// SlotMap assigns every grid edge exactly one pool slot. It is built once per
// resize and read-only afterwards.
type SlotMap struct {
	w, h int
	ids  []uint32 // EdgesPerCell per cell, row-major
	n    int
}

// UniqueSlots is the number of distinct edges of a w×h grid: horizontal,
// vertical and one diagonal per cell.
func UniqueSlots(w, h int) int {
	return w*(h+1) + (w+1)*h + w*h
}

// NewSlotMap walks cells row-major. Left reuses the left neighbour's Right,
// Top reuses the upper neighbour's Bottom, every other slot is fresh.
// It panics if w or h is below 1.
func NewSlotMap(w, h int) *SlotMap {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("grid: slot map needs at least one cell, got %dx%d", w, h))
	}
	s := &SlotMap{w: w, h: h, ids: make([]uint32, w*h*EdgesPerCell)}
	next := uint32(0)
	fresh := func() uint32 {
		id := next
		next++
		return id
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			c := s.cell(i, j)
			if i > 0 {
				c[Top] = s.cell(i-1, j)[Bottom]
			} else {
				c[Top] = fresh()
			}
			if j > 0 {
				c[Left] = s.cell(i, j-1)[Right]
			} else {
				c[Left] = fresh()
			}
			c[Bottom] = fresh()
			c[Right] = fresh()
			c[Diagonal] = fresh()
		}
	}
	s.n = int(next)
	return s
}

func (s *SlotMap) cell(i, j int) []uint32 {
	off := (i*s.w + j) * EdgesPerCell
	return s.ids[off : off+EdgesPerCell : off+EdgesPerCell]
}

func (s *SlotMap) check(i, j int) {
	if i < 0 || i >= s.h || j < 0 || j >= s.w {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %dx%d grid", i, j, s.w, s.h))
	}
}

// Len is the number of distinct slots, i.e. the pool size.
func (s *SlotMap) Len() int { return s.n }

// Size returns the grid resolution the map was built for.
func (s *SlotMap) Size() (w, h int) { return s.w, s.h }

// Points is the vertex count of the grid the map was built for.
func (s *SlotMap) Points() int { return (s.w + 1) * (s.h + 1) }

// Slot returns the pool slot of edge e of cell (i, j).
func (s *SlotMap) Slot(i, j int, e Edge) uint32 {
	s.check(i, j)
	return s.cell(i, j)[e]
}

// Cell returns all five slots of cell (i, j), indexed by Edge.
func (s *SlotMap) Cell(i, j int) [EdgesPerCell]uint32 {
	s.check(i, j)
	var out [EdgesPerCell]uint32
	copy(out[:], s.cell(i, j))
	return out
}

// Triangles returns the two triangles of cell (i, j) in the same corner order
// as the triangle index buffer:
//
//	{v(j,i), v(j+1,i), v(j,i+1)}     edges Top, Diagonal, Left
//	{v(j+1,i), v(j,i+1), v(j+1,i+1)} edges Diagonal, Bottom, Right
func (s *SlotMap) Triangles(i, j int) [2]Triangle {
	s.check(i, j)
	c := s.cell(i, j)
	stride := uint32(s.w + 1)
	v00 := uint32(i)*stride + uint32(j)
	v10 := v00 + 1
	v01 := v00 + stride
	v11 := v01 + 1
	return [2]Triangle{
		{Corners: [3]uint32{v00, v10, v01}, Slots: [3]uint32{c[Top], c[Diagonal], c[Left]}},
		{Corners: [3]uint32{v10, v01, v11}, Slots: [3]uint32{c[Diagonal], c[Bottom], c[Right]}},
	}
}
