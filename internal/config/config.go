// Package config holds the isomap settings and loads them from YAML.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"isomap/internal/field"
	"isomap/internal/geom"
	"isomap/internal/grid"
)

// Domain is the field rectangle as written in the config file.
type Domain struct {
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
}

// BBox converts the domain to a geom.BBox, ordering the corners.
func (d Domain) BBox() geom.BBox {
	return geom.BBox{
		MinX: math.Min(d.X1, d.X2), MinY: math.Min(d.Y1, d.Y2),
		MaxX: math.Max(d.X1, d.X2), MaxY: math.Max(d.Y1, d.Y2),
	}
}

type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Domain Domain `yaml:"domain"`

	// Levels is the ordered list of isoline values; the first Active of them
	// are drawn.
	Levels []float64 `yaml:"levels"`
	Active int       `yaml:"active"`

	// TimeScale multiplies wall-clock seconds into field time.
	TimeScale float64 `yaml:"time_scale"`
	FPS       int     `yaml:"fps"`

	Attractors []field.Attractor `yaml:"attractors"`
}

// Default mirrors the reference scene: an 8×8 grid over [-4,4]×[-3,3] with
// two orbiting blobs and time running ten times faster than the wall clock.
func Default() Config {
	return Config{
		Width:      8,
		Height:     8,
		Domain:     Domain{X1: -4, Y1: -3, X2: 4, Y2: 3},
		Levels:     []float64{0.5, 0.3, 0.7, 0.2, 0.8, 0.4, 0.6},
		Active:     1,
		TimeScale:  10,
		FPS:        30,
		Attractors: field.DefaultAttractors(),
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the program cannot run with. Grid
// resolution is not checked: it is clamped to [grid.MinRes, grid.MaxRes].
func (c Config) Validate() error {
	if !c.Domain.BBox().Valid() {
		return fmt.Errorf("%w: %+v", ErrDomain, c.Domain)
	}
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}
	for _, v := range c.Levels {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%w: %v", ErrLevelRange, v)
		}
	}
	if c.Active < 1 || c.Active > len(c.Levels) {
		return fmt.Errorf("%w: %d of %d", ErrActive, c.Active, len(c.Levels))
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: %d", ErrFPS, c.FPS)
	}
	if math.IsNaN(c.TimeScale) || math.IsInf(c.TimeScale, 0) {
		return fmt.Errorf("%w: %v", ErrTimeScale, c.TimeScale)
	}
	if _, err := field.NewAttractors(c.Attractors); err != nil {
		return err
	}
	return nil
}

// Clamped returns c with the grid resolution limited to the supported range.
func (c Config) Clamped() Config {
	c.Width, c.Height = grid.Clamp(c.Width), grid.Clamp(c.Height)
	return c
}
