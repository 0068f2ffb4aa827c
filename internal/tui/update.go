package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tickMsg:
		now := time.Time(msg)
		if !m.paused && !m.last.IsZero() {
			m.elapsed += now.Sub(m.last)
		}
		m.last = now
		if !m.paused {
			m.step()
		}
		return m, m.tick()
	case tea.KeyMsg:
		if m.showLevels {
			switch msg.String() {
			case "up", "down", "pgup", "pgdown", "home", "end":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Narrow):
			m.resized(m.scene.NarrowGrid())
		case key.Matches(msg, m.keys.Widen):
			m.resized(m.scene.WidenGrid())
		case key.Matches(msg, m.keys.Shorten):
			m.resized(m.scene.ShortenGrid())
		case key.Matches(msg, m.keys.Heighten):
			m.resized(m.scene.HeightenGrid())
		case key.Matches(msg, m.keys.AddLevel):
			if m.scene.AddLevel() {
				m.status = fmt.Sprintf("isolines: %d  added %g", m.scene.Active(), m.scene.Levels()[m.scene.Active()-1])
			} else {
				m.status = fmt.Sprintf("isolines: all %d shown", m.scene.Active())
			}
			m.step()
		case key.Matches(msg, m.keys.DelLevel):
			if m.scene.RemoveLevel() {
				m.status = fmt.Sprintf("isolines: %d", m.scene.Active())
			} else {
				m.status = "isolines: the first level stays"
			}
			m.step()
		case key.Matches(msg, m.keys.ZoomIn):
			m.zoom(zoomStep)
		case key.Matches(msg, m.keys.ZoomOut):
			m.zoom(1 / zoomStep)
		case key.Matches(msg, m.keys.PanUp):
			m.pan(0, panStep)
		case key.Matches(msg, m.keys.PanDown):
			m.pan(0, -panStep)
		case key.Matches(msg, m.keys.PanLeft):
			m.pan(-panStep, 0)
		case key.Matches(msg, m.keys.PanRight):
			m.pan(panStep, 0)
		case key.Matches(msg, m.keys.Home):
			m.moved(m.scene.SetDomain(m.cfg.Domain.BBox()))
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			if m.paused {
				m.status = fmt.Sprintf("paused at t=%.2f", m.simTime())
			} else {
				m.status = "running"
			}
		case key.Matches(msg, m.keys.Levels):
			m.showLevels = !m.showLevels
			if m.showLevels {
				m.refreshLevels()
			}
		case key.Matches(msg, m.keys.PNG):
			m.exportPNG()
		case key.Matches(msg, m.keys.GeoJSON):
			m.exportGeoJSON()
		case key.Matches(msg, m.keys.WKT):
			m.exportWKT()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *Model) resized(changed bool) {
	w, h := m.scene.Resolution()
	if changed {
		m.status = fmt.Sprintf("grid: %d×%d", w, h)
		m.step()
	} else {
		m.status = fmt.Sprintf("grid: %d×%d (limit)", w, h)
	}
}
