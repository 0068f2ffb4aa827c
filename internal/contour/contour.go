// Package contour extracts isolines from a sampled triangle grid with marching
// triangles. Crossing points are stored once per grid edge, in a pool indexed
// by the grid's edge slot map, and segments refer to them by slot id. Two
// triangles sharing an edge therefore share the exact same endpoint.
package contour

import (
	"fmt"
	"math"

	"isomap/internal/grid"
)

// TieEpsilon is the largest corner difference treated as a tie on a crossing
// edge. Ties write the edge midpoint instead of dividing by the difference.
const TieEpsilon = 1e-12

// Mesh is the read-only view of a grid the extractor needs.
type Mesh interface {
	Positions() [][2]float64
	Scalars() []float64
	Slots() *grid.SlotMap
}

// edge k of a triangle runs between these corners: AB, BC, CA.
var edgeCorners = [3][2]int{{0, 1}, {1, 2}, {2, 0}}

// crossings maps a corner mask to the two crossing edges. The lone corner on
// the minority side is shared by exactly those two edges.
var crossings = [8][2]int{
	0: {-1, -1},
	1: {0, 2}, 6: {0, 2}, // A alone: AB, CA
	2: {0, 1}, 5: {0, 1}, // B alone: AB, BC
	4: {1, 2}, 3: {1, 2}, // C alone: BC, CA
	7: {-1, -1},
}

// Extractor owns the point pool and segment buffer of one isoline. It keeps
// no history: every Extract overwrites both.
type Extractor struct {
	level    float64
	pool     [][2]float64
	segments []uint32
}

// New returns an empty extractor.
func New() *Extractor { return &Extractor{} }

// Extract rebuilds the isoline at level over m. A level outside the range of
// m's scalars yields no segments. Mismatched mesh arrays are rejected.
func (e *Extractor) Extract(level float64, m Mesh) error {
	pos, val, slots := m.Positions(), m.Scalars(), m.Slots()
	if slots == nil {
		return fmt.Errorf("%w: no slot map", ErrMeshMismatch)
	}
	if n := slots.Points(); len(pos) != n || len(val) != n {
		return fmt.Errorf("%w: %d positions, %d scalars, %d grid points", ErrMeshMismatch, len(pos), len(val), n)
	}

	e.level = level
	e.reset(slots.Len())

	w, h := slots.Size()
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			for _, tri := range slots.Triangles(i, j) {
				e.march(tri, pos, val)
			}
		}
	}
	return nil
}

func (e *Extractor) reset(n int) {
	if cap(e.pool) >= n {
		e.pool = e.pool[:n]
		clear(e.pool)
	} else {
		e.pool = make([][2]float64, n)
	}
	e.segments = e.segments[:0]
}

func (e *Extractor) march(tri grid.Triangle, pos [][2]float64, val []float64) {
	m := 0
	for k, c := range tri.Corners {
		if val[c] >= e.level {
			m |= 1 << k
		}
	}
	pair := crossings[m]
	if pair[0] < 0 {
		return
	}
	for _, k := range pair {
		a := tri.Corners[edgeCorners[k][0]]
		b := tri.Corners[edgeCorners[k][1]]
		e.set(tri.Slots[k], cross(e.level, a, b, pos, val))
	}
	e.segments = append(e.segments, tri.Slots[pair[0]], tri.Slots[pair[1]])
}

func (e *Extractor) set(slot uint32, p [2]float64) {
	if int(slot) >= len(e.pool) {
		panic(fmt.Sprintf("contour: slot %d outside pool of %d", slot, len(e.pool)))
	}
	e.pool[slot] = p
}

// cross interpolates the level crossing on edge (a, b). The edge is always
// walked from the lower vertex index so every triangle sharing it produces a
// bit-identical point.
func cross(level float64, a, b uint32, pos [][2]float64, val []float64) [2]float64 {
	if a > b {
		a, b = b, a
	}
	p, q := pos[a], pos[b]
	vp, vq := val[a], val[b]
	d := vq - vp
	if math.Abs(d) <= TieEpsilon {
		return [2]float64{(p[0] + q[0]) / 2, (p[1] + q[1]) / 2}
	}
	t := (level - vp) / d
	return [2]float64{p[0] + t*(q[0]-p[0]), p[1] + t*(q[1]-p[1])}
}

// Level is the value of the last extraction.
func (e *Extractor) Level() float64 { return e.level }

// Pool holds one position per edge slot; only slots referenced by Segments
// carry meaningful values.
func (e *Extractor) Pool() [][2]float64 { return e.pool }

// Segments is a flat list of slot id pairs, one pair per line segment.
func (e *Extractor) Segments() []uint32 { return e.segments }

func (e *Extractor) SegmentCount() int { return len(e.segments) / 2 }
