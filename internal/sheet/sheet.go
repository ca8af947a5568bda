// Package sheet lays out several rating bars described in a YAML document
// and renders them into a single image.
package sheet

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ratingbar"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	// ErrUnknownBar is returned when a bar name does not exist in the sheet.
	ErrUnknownBar = errors.New("sheet: unknown bar")

	// ErrNotInteractive is returned when probing an indicator or disabled bar.
	ErrNotInteractive = errors.New("sheet: bar ignores input")
)

// Sheet is a column of rating bars.
type Sheet struct {
	Background ratingbar.Color `yaml:"background"`
	Gap        float64         `yaml:"gap"`
	Padding    float64         `yaml:"padding"`
	Density    float64         `yaml:"density"`
	Bars       []BarSpec       `yaml:"bars"`

	bars []*ratingbar.Bar
}

// BarSpec describes one bar. Unset fields take the ratingbar defaults.
type BarSpec struct {
	Name        string              `yaml:"name"`
	Rating      float64             `yaml:"rating"`
	Count       *int                `yaml:"count"`
	Step        *float64            `yaml:"step"`
	Size        *float64            `yaml:"size"`
	Spacing     *float64            `yaml:"spacing"`
	Indicator   bool                `yaml:"indicator"`
	Enabled     *bool               `yaml:"enabled"`
	Shape       ratingbar.ShapeType `yaml:"shape"`
	Select      *ratingbar.Color    `yaml:"select"`
	Unselect    *ratingbar.Color    `yaml:"unselect"`
	Border      *ratingbar.Color    `yaml:"border"`
	BorderWidth float64             `yaml:"border_width"`
}

// Default returns the built-in sample sheet.
func Default() *Sheet {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("sheet: built-in sheet: %v", err))
	}
	return s
}

// Load reads and parses a sheet file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML sheet and builds its bars. Unknown keys are
// rejected, and a bar with an invalid step size fails the whole sheet.
func Parse(data []byte) (*Sheet, error) {
	s := &Sheet{
		Background: ratingbar.Color{RGBA: gg.White},
		Density:    1,
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("sheet: decode: %w", err)
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sheet) build() error {
	if s.Density <= 0 {
		s.Density = 1
	}
	seen := make(map[string]bool, len(s.Bars))
	s.bars = make([]*ratingbar.Bar, len(s.Bars))
	for i := range s.Bars {
		spec := &s.Bars[i]
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("bar-%d", i+1)
		}
		if seen[spec.Name] {
			return fmt.Errorf("sheet: bar %d: duplicate name %q", i+1, spec.Name)
		}
		seen[spec.Name] = true

		bar, err := ratingbar.New(func(r float64) { spec.Rating = r }, spec.options(s.Density)...)
		if err != nil {
			return fmt.Errorf("sheet: bar %d (%s): %w", i+1, spec.Name, err)
		}
		s.bars[i] = bar
	}
	return nil
}

func (b *BarSpec) options(density float64) []ratingbar.Option {
	opts := []ratingbar.Option{
		ratingbar.WithShape(b.Shape),
		ratingbar.WithIndicator(b.Indicator),
		ratingbar.WithDensity(density),
	}
	if b.Count != nil {
		opts = append(opts, ratingbar.WithCount(*b.Count))
	}
	if b.Step != nil {
		opts = append(opts, ratingbar.WithStepSize(*b.Step))
	}
	if b.Size != nil {
		opts = append(opts, ratingbar.WithSize(*b.Size))
	}
	if b.Spacing != nil {
		opts = append(opts, ratingbar.WithSpacing(*b.Spacing))
	}
	if b.Enabled != nil {
		opts = append(opts, ratingbar.WithEnabled(*b.Enabled))
	}

	sel, unsel := ratingbar.DefaultSelectColor, ratingbar.DefaultUnselectColor
	if b.Select != nil {
		sel = b.Select.RGBA
	}
	if b.Unselect != nil {
		unsel = b.Unselect.RGBA
	}
	opts = append(opts, ratingbar.WithColors(sel, unsel))

	border := ratingbar.DefaultBorderColor
	if b.Border != nil {
		border = b.Border.RGBA
	}
	return append(opts, ratingbar.WithBorder(border, b.BorderWidth))
}

// Bar returns the bar named name.
func (s *Sheet) Bar(name string) (*ratingbar.Bar, error) {
	i, err := s.index(name)
	if err != nil {
		return nil, err
	}
	return s.bars[i], nil
}

// Rating returns the current rating of the bar named name.
func (s *Sheet) Rating(name string) (float64, error) {
	i, err := s.index(name)
	if err != nil {
		return 0, err
	}
	return s.Bars[i].Rating, nil
}

func (s *Sheet) index(name string) (int, error) {
	for i := range s.Bars {
		if s.Bars[i].Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBar, name)
}

// Probe presses the named bar at bar-local x and releases it again,
// returning the rating the press reported. The bar's rating in the sheet
// is updated through its change callback.
func (s *Sheet) Probe(name string, x float64) (float64, error) {
	bar, err := s.Bar(name)
	if err != nil {
		return 0, err
	}
	y := bar.Height() / 2
	rating, ok := bar.HandlePointer(ratingbar.PointerEvent{Kind: ratingbar.PointerDown, X: x, Y: y})
	if !ok {
		if !bar.Interactive() {
			return 0, fmt.Errorf("%w: %q", ErrNotInteractive, name)
		}
		return 0, fmt.Errorf("sheet: x=%v is outside bar %q (width %v)", x, name, bar.TotalWidth())
	}
	bar.HandlePointer(ratingbar.PointerEvent{Kind: ratingbar.PointerUp, X: x, Y: y})
	return rating, nil
}

// Size returns the pixel size of the rendered sheet.
func (s *Sheet) Size() (int, int) {
	pad := s.Padding * s.Density
	gap := s.Gap * s.Density

	var w, h float64
	for i, bar := range s.bars {
		w = math.Max(w, bar.TotalWidth())
		h += bar.Height()
		if i > 0 {
			h += gap
		}
	}
	return int(math.Ceil(w + 2*pad)), int(math.Ceil(h + 2*pad))
}

// Origins returns the top-left corner of every bar in sheet coordinates.
// Bars are centred horizontally and stacked with Gap between them.
func (s *Sheet) Origins() []image.Point {
	width, _ := s.Size()
	pad := s.Padding * s.Density
	gap := s.Gap * s.Density

	pts := make([]image.Point, len(s.bars))
	y := pad
	for i, bar := range s.bars {
		x := (float64(width) - bar.TotalWidth()) / 2
		pts[i] = image.Pt(int(math.Round(x)), int(math.Round(y)))
		y += bar.Height() + gap
	}
	return pts
}

// Render draws every bar at its current rating.
func (s *Sheet) Render() (*image.RGBA, error) {
	w, h := s.Size()
	img, err := background(w, h, s.Background.RGBA)
	if err != nil {
		return nil, err
	}

	for i, at := range s.Origins() {
		spec := s.Bars[i]
		bar := s.bars[i]
		if err := bar.Draw(img, at, spec.Rating); err != nil {
			return nil, fmt.Errorf("sheet: draw %s: %w", spec.Name, err)
		}
		ratingbar.Logger().Debug("sheet: bar drawn",
			slog.String("bar", spec.Name),
			slog.String("label", bar.Description(spec.Rating)))
	}
	stats := ratingbar.LayerCacheStats()
	ratingbar.Logger().Debug("sheet: rendered",
		slog.Int("bars", len(s.bars)),
		slog.Int("layers", stats.Len),
		slog.Float64("hit_rate", stats.HitRate()))
	return img, nil
}

// background returns a w×h image cleared to col.
func background(w, h int, col gg.RGBA) (*image.RGBA, error) {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(col)
	if err := dc.Close(); err != nil {
		return nil, fmt.Errorf("sheet: background: %w", err)
	}
	src := dc.Image()
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba, nil
	}
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
	return img, nil
}
