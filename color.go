package ratingbar

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned when a color string cannot be parsed.
var ErrUnknownColor = errors.New("ratingbar: unknown color")

// Default colors, matching the usual rating bar look.
var (
	DefaultSelectColor   = gg.Yellow
	DefaultUnselectColor = gg.Hex("888888")
	DefaultBorderColor   = gg.Black
)

// ParseColor parses a hex color ("#rgb", "#rgba", "#rrggbb", "#rrggbbaa",
// leading '#' optional) or an SVG color name such as "yellow" or
// "lightgray".
func ParseColor(s string) (gg.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[v]; ok {
		return gg.FromColor(c), nil
	}
	hex := strings.TrimPrefix(v, "#")
	if isHex(hex) {
		switch len(hex) {
		case 3, 4, 6, 8:
			return gg.Hex(hex), nil
		}
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

// Color is a gg.RGBA that can be decoded from text, for use in
// configuration files.
type Color struct {
	gg.RGBA
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	c.RGBA = v
	return nil
}

// MarshalText implements encoding.TextMarshaler. Colors are written as
// #rrggbbaa.
func (c Color) MarshalText() ([]byte, error) {
	n := color.NRGBAModel.Convert(c.RGBA.Color()).(color.NRGBA)
	return fmt.Appendf(nil, "#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
