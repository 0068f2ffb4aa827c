package tui

import (
	"fmt"
	"path/filepath"

	"isomap/internal/geom"
	"isomap/internal/render"
	"isomap/internal/scene"
)

// PNG snapshots from the viewer are this wide; the height follows the domain.
const snapshotW = 960

// nextPath returns a fresh numbered file name in the output directory.
func (m *Model) nextPath(ext string) string {
	m.exports++
	return filepath.Join(m.outDir, fmt.Sprintf("isomap-%03d%s", m.exports, ext))
}

func (m *Model) exportPNG() {
	if m.frame == nil {
		m.status = "png: nothing to draw"
		return
	}
	p := m.nextPath(".png")
	snap := &render.Snapshot{Width: snapshotW, Height: render.HeightFor(snapshotW, m.scene.Domain()), Path: p}
	if err := m.scene.Emit(m.frame, snap); err != nil {
		m.status = "png error: " + err.Error()
		return
	}
	m.status = "saved: " + filepath.Base(p)
}

func (m *Model) exportGeoJSON() {
	m.exportData(".geojson", geom.SaveGeoJSON)
}

func (m *Model) exportWKT() {
	m.exportData(".wkt", geom.SaveWKT)
}

func (m *Model) exportData(ext string, save func(string, geom.Data) error) {
	if m.frame == nil {
		m.status = "export: no frame yet"
		return
	}
	d, err := m.frame.Data()
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	p := m.nextPath(ext)
	if err := save(p, d); err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	layers, lines, verts := d.Counts()
	scene.Logger().Info("isolines exported", "path", p, "layers", layers, "lines", lines, "vertices", verts)
	m.status = fmt.Sprintf("saved: %s  levels=%d lines=%d pts=%d", filepath.Base(p), layers, lines, verts)
}
