package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isomap/internal/config"
	"isomap/internal/field"
	"isomap/internal/geom"
	"isomap/internal/scene"
)

func frame(t *testing.T, f field.Evaluator) *scene.Frame {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 15, 12
	s, err := scene.NewWithField(cfg, f, nil)
	require.NoError(t, err)
	fr, err := s.Step(0)
	require.NoError(t, err)
	return fr
}

func rgb(c color.Color) (r, g, b uint8) {
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

func TestDrawFillsWithFieldColor(t *testing.T) {
	flat := field.Func(func(_, _, _ float64) float64 { return 0 })
	s := &Snapshot{Width: 64, Height: 48}
	dc, err := s.Draw(frame(t, flat))
	require.NoError(t, err)
	defer dc.Close()

	r, g, b := rgb(dc.Image().At(32, 24))
	assert.Less(t, r, uint8(16))
	assert.Less(t, g, uint8(16))
	assert.Greater(t, b, uint8(240))
}

func TestDrawStrokesIsolines(t *testing.T) {
	plane := field.Func(func(x, _, _ float64) float64 { return (x + 4) / 8 })
	s := &Snapshot{Width: 80, Height: 60, LineWidth: 4}
	dc, err := s.Draw(frame(t, plane))
	require.NoError(t, err)
	defer dc.Close()

	// the 0.5 line runs down x = 0, the image's middle column
	_, g, _ := rgb(dc.Image().At(40, 30))
	assert.Greater(t, g, uint8(200), "white stroke on the line")
	_, g, _ = rgb(dc.Image().At(20, 30))
	assert.Less(t, g, uint8(40), "no green on the red-blue field")
}

func TestPresentWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	s := &Snapshot{Width: 40, Height: 30, Path: path}
	require.NoError(t, s.Present(frame(t, field.Func(func(x, y, _ float64) float64 { return (x + 4) / 8 }))))

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	img, err := png.Decode(fh)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	s := &Snapshot{Width: 16, Height: 16}
	require.NoError(t, s.Encode(&buf, frame(t, field.Func(func(_, _, _ float64) float64 { return 1 }))))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestRejects(t *testing.T) {
	fr := frame(t, field.Func(func(_, _, _ float64) float64 { return 0 }))

	for _, s := range []*Snapshot{{Width: 0, Height: 10}, {Width: 10, Height: -1}, {Width: MaxSize + 1, Height: 10}} {
		_, err := s.Draw(fr)
		require.ErrorIs(t, err, ErrInvalidSize)
	}

	_, err := (&Snapshot{Width: 8, Height: 8}).Draw(nil)
	require.ErrorIs(t, err, ErrBadFrame)

	require.ErrorIs(t, (&Snapshot{Width: 8, Height: 8}).Present(fr), ErrNoPath)
}

func TestHeightFor(t *testing.T) {
	assert.Equal(t, 720, HeightFor(960, geom.BBox{MinX: -4, MinY: -3, MaxX: 4, MaxY: 3}))
	assert.Equal(t, 1, HeightFor(10, geom.BBox{MaxX: 100, MaxY: 1}))
	assert.Equal(t, 50, HeightFor(50, geom.BBox{}), "square for a bad domain")
}

func TestStrokeColorCycles(t *testing.T) {
	s := &Snapshot{}
	assert.Equal(t, Palette[0], s.StrokeColor(0))
	assert.Equal(t, Palette[1], s.StrokeColor(len(Palette)+1))

	s.Palette = []color.RGBA{{R: 1, A: 255}}
	assert.Equal(t, color.RGBA{R: 1, A: 255}, s.StrokeColor(5))
}

func TestMean(t *testing.T) {
	got := mean(color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}, color.RGBA{B: 255, A: 255})
	assert.Equal(t, color.RGBA{R: 85, B: 170, A: 255}, got)
}
