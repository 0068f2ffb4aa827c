package tui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

func meanRGBA(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(a.R) + uint16(b.R) + 1) / 2),
		G: uint8((uint16(a.G) + uint16(b.G) + 1) / 2),
		B: uint8((uint16(a.B) + uint16(b.B) + 1) / 2),
		A: 255,
	}
}
