package field

import (
	"image/color"
	"math"
)

// ColorMap turns a field sample into a vertex color.
type ColorMap func(v float64) color.RGBA

// RedBlue maps 0 to pure blue and 1 to pure red, opaque.
func RedBlue(v float64) color.RGBA {
	v = Clamp01(v)
	return color.RGBA{
		R: uint8(math.Round(255 * v)),
		B: uint8(math.Round(255 * (1 - v))),
		A: 0xff,
	}
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v >= 0:
		return v
	default:
		return 0
	}
}
