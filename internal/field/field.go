// Package field provides the analytic scalar field sampled by the grid and the
// color map that turns samples into vertex colors.
package field

import "math"

// Evaluator samples a scalar field at a domain point and time.
type Evaluator interface {
	Value(x, y, t float64) float64
}

// Attractor is a hot-spot orbiting (CX, CY) on an ellipse with radii Rx, Ry.
// Its angular position at time t is t/Period radians.
type Attractor struct {
	Rx     float64 `yaml:"rx"`
	Ry     float64 `yaml:"ry"`
	Period float64 `yaml:"period"`
	CX     float64 `yaml:"cx"`
	CY     float64 `yaml:"cy"`
}

// At returns the attractor position at time t.
func (a Attractor) At(t float64) (x, y float64) {
	s, c := math.Sincos(t / a.Period)
	return a.Rx*c + a.CX, a.Ry*s + a.CY
}

// DefaultAttractors are the two orbiting blobs of the reference scene.
func DefaultAttractors() []Attractor {
	return []Attractor{
		{Rx: 1, Ry: 1, Period: 5, CX: 2},
		{Rx: 1, Ry: 2, Period: 2, CX: -1},
	}
}

// Attractors is a field of blobs: 1 / (1 + min_k d_k²) where d_k is the
// distance to the k-th attractor. Values lie in (0, 1].
type Attractors struct {
	set []Attractor
}

// NewAttractors returns a field over a copy of set.
func NewAttractors(set []Attractor) (*Attractors, error) {
	if len(set) == 0 {
		return nil, ErrNoAttractors
	}
	for _, a := range set {
		if a.Period == 0 || math.IsNaN(a.Period) || math.IsInf(a.Period, 0) {
			return nil, ErrBadPeriod
		}
		if !finite(a.Rx) || !finite(a.Ry) || !finite(a.CX) || !finite(a.CY) {
			return nil, ErrBadAttractor
		}
	}
	cp := make([]Attractor, len(set))
	copy(cp, set)
	return &Attractors{set: cp}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Len reports the number of attractors.
func (f *Attractors) Len() int { return len(f.set) }

// Value implements Evaluator.
func (f *Attractors) Value(x, y, t float64) float64 {
	best := math.Inf(1)
	for _, a := range f.set {
		ax, ay := a.At(t)
		dx, dy := x-ax, y-ay
		if d := dx*dx + dy*dy; d < best {
			best = d
		}
	}
	return 1 / (1 + best)
}

// Func adapts an ordinary function to Evaluator.
type Func func(x, y, t float64) float64

// Value implements Evaluator.
func (f Func) Value(x, y, t float64) float64 { return f(x, y, t) }
