// Package scene ties the grid and the contour extractors together and turns
// each time step into a Frame for the sinks that draw or export it.
package scene

import (
	"errors"
	"fmt"

	"isomap/internal/config"
	"isomap/internal/contour"
	"isomap/internal/field"
	"isomap/internal/geom"
	"isomap/internal/grid"
)

// Scene owns the grid and one extractor per configured level. Only the first
// Active levels are extracted on each Step. Not safe for concurrent use.
type Scene struct {
	grid       *grid.Grid
	levels     []float64
	active     int
	extractors []*contour.Extractor
	rebuilt    bool
}

// New builds the scene described by cfg over its attractor field.
func New(cfg config.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f, err := field.NewAttractors(cfg.Attractors)
	if err != nil {
		return nil, err
	}
	return NewWithField(cfg, f, nil)
}

// NewWithField is New with an arbitrary field and vertex color map. Only the
// grid size, domain and levels of cfg are used; a nil cmap means RedBlue.
func NewWithField(cfg config.Config, f field.Evaluator, cmap field.ColorMap) (*Scene, error) {
	if len(cfg.Levels) == 0 {
		return nil, ErrNoLevels
	}
	g, err := grid.New(grid.Config{WRes: cfg.Width, HRes: cfg.Height, Domain: cfg.Domain.BBox()}, f, cmap)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		grid:       g,
		levels:     append([]float64(nil), cfg.Levels...),
		active:     min(max(cfg.Active, 1), len(cfg.Levels)),
		extractors: make([]*contour.Extractor, len(cfg.Levels)),
		rebuilt:    true,
	}
	for i := range s.extractors {
		s.extractors[i] = contour.New()
	}
	return s, nil
}

// Resize sets the grid resolution, clamped to the supported range. It
// reports whether the buffers were rebuilt.
func (s *Scene) Resize(w, h int) bool {
	old := s.grid.Config()
	if !s.grid.Resize(w, h) {
		return false
	}
	s.rebuilt = true
	cfg := s.grid.Config()
	Logger().Debug("grid resized",
		"from", fmt.Sprintf("%dx%d", old.WRes, old.HRes),
		"to", fmt.Sprintf("%dx%d", cfg.WRes, cfg.HRes),
		"points", s.grid.PointCount(),
		"slots", s.grid.Slots().Len())
	return true
}

func (s *Scene) WidenGrid() bool {
	c := s.grid.Config()
	return s.Resize(c.WRes*2, c.HRes)
}

func (s *Scene) NarrowGrid() bool {
	c := s.grid.Config()
	return s.Resize(c.WRes/2, c.HRes)
}

func (s *Scene) HeightenGrid() bool {
	c := s.grid.Config()
	return s.Resize(c.WRes, c.HRes*2)
}

func (s *Scene) ShortenGrid() bool {
	c := s.grid.Config()
	return s.Resize(c.WRes, c.HRes/2)
}

// SetDomain moves the grid over a new rectangle of the field.
func (s *Scene) SetDomain(b geom.BBox) error {
	if err := s.grid.SetDomain(b); err != nil {
		return err
	}
	s.rebuilt = true
	Logger().Debug("domain changed", "domain", b)
	return nil
}

// Domain is the rectangle of the field the grid currently covers.
func (s *Scene) Domain() geom.BBox { return s.grid.Config().Domain }

// Zoom scales the domain about its center. f > 1 zooms in.
func (s *Scene) Zoom(f float64) error {
	b := s.Domain()
	cx, cy := b.Center()
	hw, hh := b.Width()/2/f, b.Height()/2/f
	return s.SetDomain(geom.BBox{MinX: cx - hw, MinY: cy - hh, MaxX: cx + hw, MaxY: cy + hh})
}

// Pan shifts the domain by fractions of its width and height.
func (s *Scene) Pan(fx, fy float64) error {
	b := s.Domain()
	dx, dy := fx*b.Width(), fy*b.Height()
	return s.SetDomain(geom.BBox{MinX: b.MinX + dx, MinY: b.MinY + dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy})
}

// AddLevel activates the next configured level. It reports false when all
// levels are already active.
func (s *Scene) AddLevel() bool {
	if s.active >= len(s.levels) {
		return false
	}
	s.active++
	Logger().Debug("isoline added", "value", s.levels[s.active-1], "active", s.active)
	return true
}

// RemoveLevel deactivates the most recently added level. The first level
// always stays active.
func (s *Scene) RemoveLevel() bool {
	if s.active <= 1 {
		return false
	}
	s.active--
	Logger().Debug("isoline removed", "value", s.levels[s.active], "active", s.active)
	return true
}

// Step samples the field at time t, extracts every active level and returns
// the frame. The frame's slices alias scene buffers and stay valid until the
// next Step or resize.
func (s *Scene) Step(t float64) (*Frame, error) {
	s.grid.Refresh(t)
	cfg := s.grid.Config()
	f := &Frame{
		WRes:      cfg.WRes,
		HRes:      cfg.HRes,
		Time:      t,
		Domain:    cfg.Domain,
		Positions: s.grid.Positions(),
		Colors:    s.grid.Colors(),
		Indices:   s.grid.Indices(),
		Rebuilt:   s.rebuilt,
		Isolines:  make([]Isoline, 0, s.active),
	}
	for k := 0; k < s.active; k++ {
		e := s.extractors[k]
		if err := e.Extract(s.levels[k], s.grid); err != nil {
			return nil, fmt.Errorf("scene: level %g: %w", s.levels[k], err)
		}
		f.Isolines = append(f.Isolines, Isoline{
			Value:    s.levels[k],
			Pool:     e.Pool(),
			Segments: e.Segments(),
		})
	}
	if s.rebuilt {
		Logger().Debug("frame rebuilt", "t", t, "res", fmt.Sprintf("%dx%d", f.WRes, f.HRes))
	}
	s.rebuilt = false
	return f, nil
}

// Emit hands f to every sink in order. A failing sink does not stop the
// others; all failures are returned together.
func (s *Scene) Emit(f *Frame, sinks ...Sink) error {
	var errs []error
	for _, sk := range sinks {
		if err := sk.Present(f); err != nil {
			Logger().Warn("sink failed", "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Grid exposes the underlying grid, for samplers such as the terminal view.
func (s *Scene) Grid() *grid.Grid { return s.grid }

// Levels returns every configured level value, active ones first.
func (s *Scene) Levels() []float64 { return s.levels }

// Active reports how many levels are extracted per Step.
func (s *Scene) Active() int { return s.active }

// Resolution returns the current grid resolution.
func (s *Scene) Resolution() (w, h int) {
	c := s.grid.Config()
	return c.WRes, c.HRes
}
