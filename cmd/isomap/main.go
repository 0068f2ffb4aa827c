// Command isomap animates the isolines of a moving scalar field in the
// terminal, or renders a single time step to PNG, GeoJSON and WKT files.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"

	"isomap/internal/config"
	"isomap/internal/geom"
	"isomap/internal/scene"
	"isomap/internal/tui"
)

// options holds the command line.
type options struct {
	cfgPath  string
	cols     int
	rows     int
	levels   string
	logPath  string
	snapshot string
	geojson  string
	wkt      string
	at       float64
	size     string
	outDir   string
}

// oneShot reports whether any one-shot output was requested.
func (o *options) oneShot() bool {
	return o.snapshot != "" || o.geojson != "" || o.wkt != ""
}

func parseArgs(args []string) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("isomap", flag.ContinueOnError)
	fs.StringVar(&o.cfgPath, "config", "", "YAML config file")
	fs.IntVar(&o.cols, "cols", 0, "grid cells across (overrides config)")
	fs.IntVar(&o.rows, "rows", 0, "grid cells down (overrides config)")
	fs.StringVar(&o.levels, "levels", "", "comma-separated isoline values, all active (overrides config)")
	fs.StringVar(&o.logPath, "log", "", "write debug log to this file")
	fs.StringVar(&o.snapshot, "snapshot", "", "render one frame to this PNG (\"-\" for stdout) and exit")
	fs.StringVar(&o.geojson, "geojson", "", "export one frame's isolines to this GeoJSON file and exit")
	fs.StringVar(&o.wkt, "wkt", "", "export one frame's isolines to this WKT file and exit")
	fs.Float64Var(&o.at, "t", 0, "field time of the exported frame")
	fs.StringVar(&o.size, "size", "960", "snapshot size in pixels, WxH or a width that keeps the domain aspect")
	fs.StringVar(&o.outDir, "out", ".", "directory for exports made from the viewer")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	cfg := config.Default()
	if opts.cfgPath != "" {
		if cfg, err = config.Load(opts.cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if opts.cols > 0 {
		cfg.Width = opts.cols
	}
	if opts.rows > 0 {
		cfg.Height = opts.rows
	}
	if opts.levels != "" {
		vs, err := parseLevels(opts.levels)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Levels, cfg.Active = vs, len(vs)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	cfg = cfg.Clamped()

	if opts.logPath != "" {
		f, err := tea.LogToFile(opts.logPath, "isomap")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		scene.SetLogger(l)
		gg.SetLogger(l)
	}

	if opts.oneShot() {
		w, h, err := parseSize(opts.size, cfg.Domain.BBox())
		if err != nil {
			log.Fatal(err)
		}
		var sinks []scene.Sink
		if opts.snapshot != "" {
			sinks = append(sinks, pngSink(opts.snapshot, w, h, os.Stdout))
		}
		if opts.geojson != "" {
			sinks = append(sinks, exportSink(opts.geojson, geom.SaveGeoJSON))
		}
		if opts.wkt != "" {
			sinks = append(sinks, exportSink(opts.wkt, geom.SaveWKT))
		}
		if err := headless(cfg, opts.at, sinks...); err != nil {
			log.Fatal(err)
		}
		return
	}

	m, err := tui.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tea.NewProgram(m.WithOutputDir(opts.outDir), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
