package ratingbar

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

// ErrInvalidStepSize is returned by New when the step size is outside (0, 1].
var ErrInvalidStepSize = errors.New("ratingbar: invalid step size")

// truncEpsilon absorbs float error before truncating to two decimals,
// so that 3×0.1 reports 0.3 and not 0.29.
const truncEpsilon = 1e-9

// Bar is a row of rating slots.
//
// A Bar does not store a rating. The host passes the current rating to
// Draw, Render and Description, and updates it from the change callback.
// The only mutable state is the pointer gesture in progress, so a Bar must
// be driven from a single goroutine, usually the UI event loop.
type Bar struct {
	count     int
	stepSize  float64
	size      float64
	spacing   float64
	indicator bool
	enabled   bool
	shape     ShapeType
	style     ShapeStyle
	onChange  func(float64)

	dragging bool
}

// New creates a Bar. onChange receives every rating produced by pointer
// input and may be nil for display-only bars.
//
// New fails with ErrInvalidStepSize when the step size is not in (0, 1].
// Other parameters are not validated; out-of-range values give
// best-effort drawing.
func New(onChange func(float64), opts ...Option) (*Bar, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !(o.stepSize > 0 && o.stepSize <= 1) {
		return nil, fmt.Errorf("%w: %v, must be greater than 0 and at most 1", ErrInvalidStepSize, o.stepSize)
	}

	density := o.density
	if density <= 0 {
		density = 1
	}

	b := &Bar{
		count:     o.count,
		stepSize:  o.stepSize,
		size:      o.size * density,
		spacing:   o.spacing * density,
		indicator: o.indicator,
		enabled:   o.enabled,
		shape:     o.shape,
		onChange:  onChange,
	}
	b.style = ShapeStyle{
		Size:        b.size,
		BorderWidth: o.borderWidth * density,
		Select:      o.selectColor,
		Unselect:    o.unselect,
		Border:      o.borderColor,
	}
	return b, nil
}

// MustNew is like New but panics on invalid configuration.
func MustNew(onChange func(float64), opts ...Option) *Bar {
	b, err := New(onChange, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Count returns the number of slots.
func (b *Bar) Count() int { return b.count }

// StepSize returns the quantization step for pointer input.
func (b *Bar) StepSize() float64 { return b.stepSize }

// Shape returns the shape drawn in every slot.
func (b *Bar) Shape() ShapeType { return b.shape }

// Style returns the per-slot style in device pixels.
func (b *Bar) Style() ShapeStyle { return b.style }

// Interactive reports whether the bar reacts to pointer input.
func (b *Bar) Interactive() bool { return !b.indicator && b.enabled }

// TotalWidth returns count×size + (count−1)×spacing.
func (b *Bar) TotalWidth() float64 {
	if b.count <= 0 {
		return 0
	}
	n := float64(b.count)
	return n*b.size + (n-1)*b.spacing
}

// Height returns the height of the bar, equal to the slot size.
func (b *Bar) Height() float64 { return b.size }

// Bounds returns the pixel rectangle covered by the bar, anchored at the
// origin.
func (b *Bar) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(math.Ceil(b.TotalWidth())), int(math.Ceil(b.size)))
}

// Contains reports whether the bar-local point (x, y) lies on the bar.
func (b *Bar) Contains(x, y float64) bool {
	return x >= 0 && x <= b.TotalWidth() && y >= 0 && y <= b.size
}

// SlotX returns the left edge of slot i (1-indexed).
func (b *Bar) SlotX(i int) float64 {
	return float64(i-1) * (b.size + b.spacing)
}

// SlotRect returns the pixel rectangle of slot i (1-indexed), anchored at
// the bar origin.
func (b *Bar) SlotRect(i int) image.Rectangle {
	x := int(math.Round(b.SlotX(i)))
	px := b.style.pixelSize()
	return image.Rect(x, 0, x+px, px)
}

// FillStates returns the fill of every slot for rating.
func (b *Bar) FillStates(rating float64) []FillState {
	return FillStates(rating, b.count)
}

// Draw paints the bar for rating into dst with its top-left corner at at.
func (b *Bar) Draw(dst draw.Image, at image.Point, rating float64) error {
	for i, fill := range b.FillStates(rating) {
		r := b.SlotRect(i + 1).Add(at)
		if err := DrawShape(dst, r.Min, b.shape, fill, b.style); err != nil {
			return fmt.Errorf("ratingbar: slot %d: %w", i+1, err)
		}
	}
	return nil
}

// Render draws the bar for rating on a transparent image of Bounds size.
func (b *Bar) Render(rating float64) (*image.RGBA, error) {
	img := image.NewRGBA(b.Bounds())
	if err := b.Draw(img, image.Point{}, rating); err != nil {
		return nil, err
	}
	return img, nil
}

// Quantize maps a bar-local x coordinate to a rating.
//
// The raw rating x/TotalWidth×count is clamped to [0, count], rounded half
// up to the nearest multiple of the step size and truncated to two
// decimal places.
func (b *Bar) Quantize(x float64) float64 {
	w := b.TotalWidth()
	if w <= 0 {
		return 0
	}
	n := float64(b.count)
	raw := max(0, min(x/w*n, n))
	steps := math.Floor(raw/b.stepSize + 0.5)
	return math.Trunc(steps*b.stepSize*100+truncEpsilon) / 100
}

// Description returns the accessibility label for rating, for example
// "Rating: 2.5 out of 5 stars".
func (b *Bar) Description(rating float64) string {
	return fmt.Sprintf("Rating: %s out of %d stars", formatRating(rating), b.count)
}

// formatRating prints r with at least one decimal place.
func formatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if math.IsInf(r, 0) || math.IsNaN(r) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
