package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"isomap/internal/config"
	"isomap/internal/geom"
	"isomap/internal/render"
	"isomap/internal/scene"
)

// headless renders the frame at time t once and hands it to every sink.
func headless(cfg config.Config, t float64, sinks ...scene.Sink) error {
	sc, err := scene.New(cfg)
	if err != nil {
		return err
	}
	f, err := sc.Step(t)
	if err != nil {
		return err
	}
	return sc.Emit(f, sinks...)
}

// exportSink writes a frame's isolines with save.
func exportSink(path string, save func(string, geom.Data) error) scene.Sink {
	return scene.SinkFunc(func(f *scene.Frame) error {
		d, err := f.Data()
		if err != nil {
			return err
		}
		if err := save(path, d); err != nil {
			return err
		}
		layers, lines, verts := d.Counts()
		scene.Logger().Info("isolines exported", "path", path, "layers", layers, "lines", lines, "vertices", verts)
		return nil
	})
}

// pngSink renders frames to path, or streams them to stdout when path is "-".
func pngSink(path string, w, h int, stdout io.Writer) scene.Sink {
	snap := &render.Snapshot{Width: w, Height: h, Path: path}
	if path != "-" {
		return snap
	}
	return scene.SinkFunc(func(f *scene.Frame) error {
		return snap.Encode(stdout, f)
	})
}

func parseLevels(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("levels: %q: %w", p, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("levels: none in %q", s)
	}
	return out, nil
}

// parseSize reads "WxH" or a bare width. A bare width gives the height that
// keeps the aspect ratio of domain.
func parseSize(s string, domain geom.BBox) (w, h int, err error) {
	a, b, ok := strings.Cut(strings.ToLower(s), "x")
	if w, err = strconv.Atoi(strings.TrimSpace(a)); err != nil {
		return 0, 0, fmt.Errorf("size: %q: %w", s, err)
	}
	if !ok {
		return w, render.HeightFor(w, domain), nil
	}
	if h, err = strconv.Atoi(strings.TrimSpace(b)); err != nil {
		return 0, 0, fmt.Errorf("size: %q: %w", s, err)
	}
	return w, h, nil
}
