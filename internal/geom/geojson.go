package geom

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

type gjGeometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

type gjFeature struct {
	Type       string         `json:"type"`
	Geometry   gjGeometry     `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type gjCollection struct {
	Type     string      `json:"type"`
	BBox     []float64   `json:"bbox,omitempty"`
	Features []gjFeature `json:"features"`
}

// WriteGeoJSON encodes d as a FeatureCollection with one MultiLineString
// feature per layer. Layer name and value go into the feature properties.
func WriteGeoJSON(w io.Writer, d Data) error {
	if len(d.Layers) == 0 {
		return errors.New("geojson: no layers to write")
	}
	fc := gjCollection{Type: "FeatureCollection", Features: make([]gjFeature, 0, len(d.Layers))}
	if _, _, n := d.Counts(); n > 0 {
		fc.BBox = []float64{d.BBox.MinX, d.BBox.MinY, d.BBox.MaxX, d.BBox.MaxY}
	}
	for _, l := range d.Layers {
		lines := l.Lines
		if lines == nil {
			// empty MultiLineString, never null
			lines = [][][2]float64{}
		}
		fc.Features = append(fc.Features, gjFeature{
			Type:     "Feature",
			Geometry: gjGeometry{Type: "MultiLineString", Coordinates: lines},
			Properties: map[string]any{
				"name":  l.Name,
				"level": l.Value,
			},
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(fc)
}

// SaveGeoJSON writes d to path.
func SaveGeoJSON(path string, d Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGeoJSON(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
