package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"isomap/internal/config"
	"isomap/internal/scene"
)

type tickMsg time.Time

type Model struct {
	width  int
	height int

	cfg   config.Config
	scene *scene.Scene
	frame *scene.Frame

	// simulated time advances with wall time while not paused
	elapsed time.Duration
	last    time.Time
	paused  bool

	status string

	keys keyMap
	help help.Model

	// levels table
	showLevels bool
	tbl        table.Model

	// exports
	outDir  string
	exports int
}

// New builds the viewer over a fresh scene for cfg and renders frame zero.
func New(cfg config.Config) (Model, error) {
	sc, err := scene.New(cfg)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		cfg:    cfg,
		scene:  sc,
		status: "isomap ready",
		keys:   defaultKeys(),
		help:   help.New(),
		outDir: ".",
	}
	m.tbl = table.New(table.WithColumns(levelColumns), table.WithFocused(true))
	m.tbl.SetHeight(len(cfg.Levels) + 1)
	m.step()
	return m, nil
}

// WithOutputDir sets where exported files are written.
func (m Model) WithOutputDir(dir string) Model {
	m.outDir = dir
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// simTime maps elapsed wall time to field time.
func (m Model) simTime() float64 {
	return m.elapsed.Seconds() * m.cfg.TimeScale
}

// step advances the scene to the current simulated time.
func (m *Model) step() {
	f, err := m.scene.Step(m.simTime())
	if err != nil {
		m.status = "step error: " + err.Error()
		return
	}
	m.frame = f
	if m.showLevels {
		m.refreshLevels()
	}
}
