package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isomap/internal/field"
	"isomap/internal/geom"
	"isomap/internal/grid"
)

type fakeMesh struct {
	pos   [][2]float64
	val   []float64
	slots *grid.SlotMap
}

func (m fakeMesh) Positions() [][2]float64 { return m.pos }
func (m fakeMesh) Scalars() []float64      { return m.val }
func (m fakeMesh) Slots() *grid.SlotMap    { return m.slots }

func unitCell(w0, w1, w2, w3 float64) fakeMesh {
	return fakeMesh{
		pos:   [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		val:   []float64{w0, w1, w2, w3},
		slots: grid.NewSlotMap(1, 1),
	}
}

func newGrid(t *testing.T, w, h int, f field.Evaluator) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.Config{WRes: w, HRes: h, Domain: geom.BBox{MinX: -4, MinY: -3, MaxX: 4, MaxY: 3}}, f, nil)
	require.NoError(t, err)
	return g
}

func blobs(t *testing.T) field.Evaluator {
	t.Helper()
	f, err := field.NewAttractors(field.DefaultAttractors())
	require.NoError(t, err)
	return f
}

func TestSingleCellVerticalLine(t *testing.T) {
	m := unitCell(0, 1, 0, 1)
	e := New()
	require.NoError(t, e.Extract(0.5, m))

	require.Equal(t, 2, e.SegmentCount())
	s := m.slots
	top, diag, bottom := s.Slot(0, 0, grid.Top), s.Slot(0, 0, grid.Diagonal), s.Slot(0, 0, grid.Bottom)
	assert.Equal(t, []uint32{top, diag, diag, bottom}, e.Segments())

	pool := e.Pool()
	assert.Len(t, pool, grid.UniqueSlots(1, 1))
	assert.Equal(t, [2]float64{0.5, 0}, pool[top])
	assert.Equal(t, [2]float64{0.5, 0.5}, pool[diag])
	assert.Equal(t, [2]float64{0.5, 1}, pool[bottom])

	lines := Resolve(e.Pool(), Chain(e.Segments()))
	require.Len(t, lines, 1)
	assert.Equal(t, [][2]float64{{0.5, 0}, {0.5, 0.5}, {0.5, 1}}, lines[0])
}

func TestNoCrossingMasks(t *testing.T) {
	e := New()
	require.NoError(t, e.Extract(0.5, unitCell(0.1, 0.2, 0.3, 0.4)))
	assert.Zero(t, e.SegmentCount())
	require.NoError(t, e.Extract(0.5, unitCell(0.6, 0.7, 0.8, 0.5)))
	assert.Zero(t, e.SegmentCount())
	assert.Empty(t, Resolve(e.Pool(), Chain(e.Segments())))
}

func TestMaskTable(t *testing.T) {
	// corners of the first triangle are v0, v1, v2; v3 only touches the second
	cases := []struct {
		name string
		val  [4]float64
		want []uint32 // first triangle's segment, as Edge values
	}{
		{"A high", [4]float64{1, 0, 0, 0}, []uint32{uint32(grid.Top), uint32(grid.Left)}},
		{"A low", [4]float64{0, 1, 1, 1}, []uint32{uint32(grid.Top), uint32(grid.Left)}},
		{"B high", [4]float64{0, 1, 0, 0}, []uint32{uint32(grid.Top), uint32(grid.Diagonal)}},
		{"B low", [4]float64{1, 0, 1, 1}, []uint32{uint32(grid.Top), uint32(grid.Diagonal)}},
		{"C high", [4]float64{0, 0, 1, 0}, []uint32{uint32(grid.Diagonal), uint32(grid.Left)}},
		{"C low", [4]float64{1, 1, 0, 1}, []uint32{uint32(grid.Diagonal), uint32(grid.Left)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := unitCell(tc.val[0], tc.val[1], tc.val[2], tc.val[3])
			e := New()
			require.NoError(t, e.Extract(0.5, m))
			require.GreaterOrEqual(t, e.SegmentCount(), 1)
			cell := m.slots.Cell(0, 0)
			got := e.Segments()[:2]
			assert.Equal(t, []uint32{cell[tc.want[0]], cell[tc.want[1]]}, got)
		})
	}
}

func TestLevelOutsideRangeIsEmpty(t *testing.T) {
	g := newGrid(t, 64, 48, blobs(t))
	g.Refresh(12.3)
	lo, hi := g.Range()

	e := New()
	for _, level := range []float64{hi + 1e-9, hi + 0.5, lo - 1e-9, 0} {
		require.NoError(t, e.Extract(level, g))
		assert.Empty(t, e.Segments(), "level %v", level)
	}
	require.NoError(t, e.Extract((lo+hi)/2, g))
	assert.NotEmpty(t, e.Segments())
}

func TestSharedEdgesBitIdentical(t *testing.T) {
	g := newGrid(t, 40, 30, blobs(t))
	g.Refresh(5.5)
	pos, val, slots := g.Positions(), g.Scalars(), g.Slots()

	e := New()
	const level = 0.3
	require.NoError(t, e.Extract(level, g))
	require.NotEmpty(t, e.Segments())

	// recompute every crossing from each adjacent triangle, walking the edge
	// in both directions, and compare with what the pool holds
	w, h := slots.Size()
	checked := 0
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			for _, tri := range slots.Triangles(i, j) {
				for k, ec := range edgeCorners {
					a, b := tri.Corners[ec[0]], tri.Corners[ec[1]]
					if (val[a] >= level) == (val[b] >= level) {
						continue
					}
					fwd := cross(level, a, b, pos, val)
					rev := cross(level, b, a, pos, val)
					require.Equal(t, fwd, rev)
					require.Equal(t, fwd, e.Pool()[tri.Slots[k]])
					checked++
				}
			}
		}
	}
	assert.Positive(t, checked)
}

func TestCrossingsLieOnLevel(t *testing.T) {
	plane := field.Func(func(x, y, _ float64) float64 { return (x+4)/16 + (y+3)/12 })
	g := newGrid(t, 7, 5, plane)

	e := New()
	require.NoError(t, e.Extract(0.41, g))
	require.NotEmpty(t, e.Segments())
	for _, s := range e.Segments() {
		p := e.Pool()[s]
		// render space back to the domain: x = 4p, y = 3p
		assert.InDelta(t, 0.41, plane(4*p[0], 3*p[1], 0), 1e-12)
	}

	lines := Resolve(e.Pool(), Chain(e.Segments()))
	require.Len(t, lines, 1, "a plane crosses the grid in one open line")
	assert.Equal(t, e.SegmentCount()+1, len(lines[0]))
}

func TestClosedLoop(t *testing.T) {
	bump := field.Func(func(x, y, _ float64) float64 { return 1 / (1 + x*x + y*y) })
	g := newGrid(t, 32, 24, bump)

	e := New()
	require.NoError(t, e.Extract(0.45, g))
	chains := Chain(e.Segments())
	require.Len(t, chains, 1)
	c := chains[0]
	assert.Equal(t, c[0], c[len(c)-1], "loop closes on its first slot")
	assert.Equal(t, e.SegmentCount()+1, len(c))
}

func TestChainsCoverEverySegmentOnce(t *testing.T) {
	g := newGrid(t, 50, 50, blobs(t))
	for _, tm := range []float64{0, 3, 9.1} {
		g.Refresh(tm)
		for _, level := range []float64{0.15, 0.35, 0.6} {
			e := New()
			require.NoError(t, e.Extract(level, g))
			total := 0
			for _, c := range Chain(e.Segments()) {
				total += len(c) - 1
			}
			assert.Equal(t, e.SegmentCount(), total)
		}
	}
}

func TestTieWritesMidpoint(t *testing.T) {
	pos := [][2]float64{{0, 0}, {2, 4}}
	val := []float64{0.5, 0.5}
	assert.Equal(t, [2]float64{1, 2}, cross(0.5, 0, 1, pos, val))

	val = []float64{0.5, 0.5 + TieEpsilon/2}
	assert.Equal(t, [2]float64{1, 2}, cross(0.5, 1, 0, pos, val))

	val = []float64{0, 1}
	p := cross(0.25, 0, 1, pos, val)
	assert.False(t, math.IsNaN(p[0]))
	assert.Equal(t, [2]float64{0.5, 1}, p)
}

func TestExtractorReuseAcrossResize(t *testing.T) {
	g := newGrid(t, 64, 64, blobs(t))
	e := New()
	require.NoError(t, e.Extract(0.3, g))
	assert.Len(t, e.Pool(), grid.UniqueSlots(64, 64))

	g.Resize(4, 4)
	require.NoError(t, e.Extract(0.3, g))
	assert.Len(t, e.Pool(), grid.UniqueSlots(4, 4))
	assert.Equal(t, 0.3, e.Level())
	for _, s := range e.Segments() {
		assert.Less(t, int(s), len(e.Pool()))
	}
}

func TestExtractRejectsMismatch(t *testing.T) {
	m := unitCell(0, 1, 0, 1)
	m.val = m.val[:3]
	err := New().Extract(0.5, m)
	require.ErrorIs(t, err, ErrMeshMismatch)

	err = New().Extract(0.5, fakeMesh{})
	require.ErrorIs(t, err, ErrMeshMismatch)
}
