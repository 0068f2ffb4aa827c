package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isomap/internal/field"
)

func TestAttractorsValueRange(t *testing.T) {
	f, err := field.NewAttractors(field.DefaultAttractors())
	require.NoError(t, err)

	for _, tm := range []float64{0, 1.5, 17, 123.25} {
		for x := -4.0; x <= 4; x += 0.5 {
			for y := -3.0; y <= 3; y += 0.5 {
				v := f.Value(x, y, tm)
				require.Greater(t, v, 0.0)
				require.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestAttractorsPeakAtAttractor(t *testing.T) {
	set := field.DefaultAttractors()
	f, err := field.NewAttractors(set)
	require.NoError(t, err)

	const tm = 3.7
	for _, a := range set {
		x, y := a.At(tm)
		assert.InDelta(t, 1.0, f.Value(x, y, tm), 1e-12)
	}
	// the original formula: first blob at (cos(t/5)+2, sin(t/5))
	x, y := set[0].At(0)
	assert.InDelta(t, 3.0, x, 1e-12)
	assert.InDelta(t, 0.0, y, 1e-12)
	x, y = set[1].At(math.Pi) // t/2 = π/2
	assert.InDelta(t, -1.0, x, 1e-12)
	assert.InDelta(t, 2.0, y, 1e-12)
}

func TestAttractorsDeterministic(t *testing.T) {
	f, err := field.NewAttractors(field.DefaultAttractors())
	require.NoError(t, err)
	assert.Equal(t, f.Value(0.3, -1.2, 9.5), f.Value(0.3, -1.2, 9.5))
}

func TestAttractorsDecayWithDistance(t *testing.T) {
	f, err := field.NewAttractors([]field.Attractor{{Period: 1}})
	require.NoError(t, err)
	// single attractor parked at the origin at t=0: (Rx·cos0, Ry·sin0) = (0,0)
	assert.Equal(t, 1.0, f.Value(0, 0, 0))
	assert.InDelta(t, 0.5, f.Value(1, 0, 0), 1e-12)
	assert.InDelta(t, 0.2, f.Value(0, 2, 0), 1e-12)
	assert.InDelta(t, 1.0/6, f.Value(1, 2, 0), 1e-12)
}

func TestNewAttractorsRejects(t *testing.T) {
	_, err := field.NewAttractors(nil)
	require.ErrorIs(t, err, field.ErrNoAttractors)

	_, err = field.NewAttractors([]field.Attractor{{Rx: 1, Period: 0}})
	require.ErrorIs(t, err, field.ErrBadPeriod)

	for name, a := range map[string]field.Attractor{
		"nan rx":  {Rx: math.NaN(), Ry: 1, Period: 5},
		"inf ry":  {Rx: 1, Ry: math.Inf(1), Period: 5},
		"-inf cx": {Rx: 1, Ry: 1, Period: 5, CX: math.Inf(-1)},
		"nan cy":  {Rx: 1, Ry: 1, Period: 5, CY: math.NaN()},
	} {
		_, err := field.NewAttractors([]field.Attractor{a})
		require.ErrorIs(t, err, field.ErrBadAttractor, name)
	}
}

func TestFuncAdapter(t *testing.T) {
	var e field.Evaluator = field.Func(func(x, y, _ float64) float64 { return x + y })
	assert.Equal(t, 3.0, e.Value(1, 2, 99))
}
