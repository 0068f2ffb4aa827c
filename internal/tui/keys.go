package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Narrow   key.Binding
	Widen    key.Binding
	Shorten  key.Binding
	Heighten key.Binding
	AddLevel key.Binding
	DelLevel key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	PanLeft  key.Binding
	PanRight key.Binding
	Home     key.Binding
	Pause    key.Binding
	Levels   key.Binding
	PNG      key.Binding
	GeoJSON  key.Binding
	WKT      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Narrow:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d/f", "width ÷2/×2")),
		Widen:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "width ×2")),
		Shorten:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j/k", "height ÷2/×2")),
		Heighten: key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "height ×2")),
		AddLevel: key.NewBinding(key.WithKeys("]"), key.WithHelp("]/[", "isoline +/-")),
		DelLevel: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "isoline -")),
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		PanUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "pan")),
		PanDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "pan down")),
		PanLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pan left")),
		PanRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pan right")),
		Home:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
		Pause:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pause")),
		Levels:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "levels")),
		PNG:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "png")),
		GeoJSON:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "geojson")),
		WKT:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wkt")),
		Help:     key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp shows paired bindings once, under the first of each pair.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrow, k.Shorten, k.AddLevel, k.ZoomIn, k.PanUp, k.Pause, k.Levels, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrow, k.Widen, k.Shorten, k.Heighten},
		{k.AddLevel, k.DelLevel, k.Pause, k.Levels},
		{k.ZoomIn, k.ZoomOut, k.PanUp, k.Home},
		{k.PNG, k.GeoJSON, k.WKT},
		{k.Help, k.Quit},
	}
}
