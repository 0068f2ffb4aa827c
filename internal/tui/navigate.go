package tui

import "fmt"

// Zoom bounds are relative to the configured domain.
const (
	zoomStep = 1.2
	panStep  = 0.1
	minZoom  = 0.05
	maxZoom  = 64
)

// zoomLevel is how much narrower the current domain is than the configured one.
func (m Model) zoomLevel() float64 {
	return m.cfg.Domain.BBox().Width() / m.scene.Domain().Width()
}

func (m *Model) zoom(f float64) {
	z := m.zoomLevel() * f
	if z > maxZoom || z < minZoom {
		m.status = fmt.Sprintf("zoom: %.2fx (limit)", m.zoomLevel())
		return
	}
	m.moved(m.scene.Zoom(f))
}

// pan moves the view by fractions of the visible domain, y up.
func (m *Model) pan(fx, fy float64) {
	m.moved(m.scene.Pan(fx, fy))
}

func (m *Model) moved(err error) {
	if err != nil {
		m.status = "domain error: " + err.Error()
		return
	}
	d := m.scene.Domain()
	m.status = fmt.Sprintf("zoom: %.2fx  x %.3g..%.3g  y %.3g..%.3g", m.zoomLevel(), d.MinX, d.MaxX, d.MinY, d.MaxY)
	m.step()
}
