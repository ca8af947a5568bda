package sheet

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ratingbar"
)

func TestDefaultSheet(t *testing.T) {
	s := Default()
	require.Len(t, s.Bars, 6)

	names := make([]string, 0, len(s.Bars))
	for _, b := range s.Bars {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"stars", "stars-outline", "stars-thick-outline", "hearts", "circles", "squares"}, names)

	hearts, err := s.Bar("hearts")
	require.NoError(t, err)
	assert.Equal(t, ratingbar.ShapeHeart, hearts.Shape())
	assert.Equal(t, ratingbar.DefaultStepSize, hearts.StepSize())
	assert.Equal(t, 4.0, hearts.Style().BorderWidth)

	// 5×50 + 4×8 = 282 wide plus padding; six 50px bars with five 12px gaps.
	w, h := s.Size()
	assert.Equal(t, 282+32, w)
	assert.Equal(t, 6*50+5*12+32, h)
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(`
bars:
  - rating: 2
  - name: named
    count: 3
    step: 1
    spacing: 0
    enabled: false
`))
	require.NoError(t, err)
	require.Len(t, s.Bars, 2)

	assert.Equal(t, "bar-1", s.Bars[0].Name)
	first, err := s.Bar("bar-1")
	require.NoError(t, err)
	assert.Equal(t, ratingbar.DefaultCount, first.Count())
	assert.Equal(t, ratingbar.ShapeStar, first.Shape())
	assert.True(t, first.Interactive())

	named, err := s.Bar("named")
	require.NoError(t, err)
	assert.Equal(t, 3, named.Count())
	assert.Equal(t, 3*ratingbar.DefaultSize, named.TotalWidth())
	assert.False(t, named.Interactive())
	assert.Equal(t, 1.0, s.Density)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		is   error
	}{
		{"zero step", "bars:\n  - step: 0\n", ratingbar.ErrInvalidStepSize},
		{"step above one", "bars:\n  - step: 1.5\n", ratingbar.ErrInvalidStepSize},
		{"unknown shape", "bars:\n  - shape: hexagon\n", ratingbar.ErrUnknownShape},
		{"unknown color", "bars:\n  - select: notacolor\n", ratingbar.ErrUnknownColor},
		{"unknown key", "bars:\n  - colour: red\n", nil},
		{"duplicate name", "bars:\n  - name: a\n  - name: a\n", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestProbeUpdatesRating(t *testing.T) {
	s := Default()

	got, err := s.Probe("stars", 0.44*282)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	rating, err := s.Rating("stars")
	require.NoError(t, err)
	assert.Equal(t, 2.0, rating)

	bar, err := s.Bar("stars")
	require.NoError(t, err)
	assert.False(t, bar.Dragging())
}

func TestProbeErrors(t *testing.T) {
	s, err := Parse([]byte("bars:\n  - name: ro\n    indicator: true\n  - name: rw\n"))
	require.NoError(t, err)

	_, err = s.Probe("missing", 10)
	assert.ErrorIs(t, err, ErrUnknownBar)

	_, err = s.Probe("ro", 10)
	assert.ErrorIs(t, err, ErrNotInteractive)

	_, err = s.Probe("rw", 10000)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	s := Default()
	img, err := s.Render()
	require.NoError(t, err)

	w, h := s.Size()
	assert.Equal(t, image.Rect(0, 0, w, h), img.Bounds())

	origins := s.Origins()
	require.Len(t, origins, 6)
	assert.Equal(t, image.Pt(16, 16), origins[0])
	assert.Equal(t, image.Pt(16, 16+62), origins[1])

	assertRGBA(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(2, 2))

	// First bar has rating 1: slot one is yellow, slot two light gray.
	assertRGBA(t, color.RGBA{R: 255, G: 255, B: 0, A: 255}, img.RGBAAt(16+25, 16+27))
	assertRGBA(t, color.RGBA{R: 211, G: 211, B: 211, A: 255}, img.RGBAAt(16+58+25, 16+27))
}

func assertRGBA(t *testing.T, want, got color.RGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 3, "red")
	assert.InDelta(t, want.G, got.G, 3, "green")
	assert.InDelta(t, want.B, got.B, 3, "blue")
	assert.InDelta(t, want.A, got.A, 3, "alpha")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("background: \"#000000\"\nbars:\n  - shape: square\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Background.R)
	assert.Equal(t, 1.0, s.Background.A)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
