package ratingbar

import "github.com/gogpu/gg"

// Option configures a Bar during creation.
//
// Example:
//
//	// Five stars, half-step input
//	bar, err := ratingbar.New(onChange, ratingbar.WithStepSize(0.5))
//
//	// Read-only hearts with an outline
//	bar, err := ratingbar.New(nil,
//	    ratingbar.WithShape(ratingbar.ShapeHeart),
//	    ratingbar.WithBorder(gg.Black, 4),
//	    ratingbar.WithIndicator(true),
//	)
type Option func(*options)

// options holds the configuration of a Bar. Lengths are in
// density-independent units until New scales them.
type options struct {
	count       int
	stepSize    float64
	size        float64
	spacing     float64
	indicator   bool
	enabled     bool
	shape       ShapeType
	selectColor gg.RGBA
	unselect    gg.RGBA
	borderColor gg.RGBA
	borderWidth float64
	density     float64
}

// Defaults used when an option is not given.
const (
	DefaultCount    = 5
	DefaultStepSize = 0.1
	DefaultSize     = 28.0
	DefaultSpacing  = 8.0
)

func defaultOptions() options {
	return options{
		count:       DefaultCount,
		stepSize:    DefaultStepSize,
		size:        DefaultSize,
		spacing:     DefaultSpacing,
		enabled:     true,
		shape:       ShapeStar,
		selectColor: DefaultSelectColor,
		unselect:    DefaultUnselectColor,
		borderColor: DefaultBorderColor,
		density:     1,
	}
}

// WithCount sets the number of slots.
func WithCount(n int) Option {
	return func(o *options) {
		o.count = n
	}
}

// WithStepSize sets the granularity of ratings reported from pointer
// input. It must lie in (0, 1]; New rejects anything else.
func WithStepSize(step float64) Option {
	return func(o *options) {
		o.stepSize = step
	}
}

// WithSize sets the side of each slot.
func WithSize(size float64) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithSpacing sets the gap between adjacent slots.
func WithSpacing(spacing float64) Option {
	return func(o *options) {
		o.spacing = spacing
	}
}

// WithIndicator makes the bar read-only.
func WithIndicator(indicator bool) Option {
	return func(o *options) {
		o.indicator = indicator
	}
}

// WithEnabled enables or disables pointer input.
func WithEnabled(enabled bool) Option {
	return func(o *options) {
		o.enabled = enabled
	}
}

// WithShape sets the shape drawn in every slot.
func WithShape(shape ShapeType) Option {
	return func(o *options) {
		o.shape = shape
	}
}

// WithColors sets the colors of the filled and unfilled parts.
func WithColors(selectColor, unselectColor gg.RGBA) Option {
	return func(o *options) {
		o.selectColor = selectColor
		o.unselect = unselectColor
	}
}

// WithBorder sets the outline color and width. A width of zero disables
// the outline.
func WithBorder(col gg.RGBA, width float64) Option {
	return func(o *options) {
		o.borderColor = col
		o.borderWidth = width
	}
}

// WithDensity sets the number of device pixels per unit. Size, spacing and
// border width are multiplied by it. Non-positive values mean 1.
func WithDensity(density float64) Option {
	return func(o *options) {
		o.density = density
	}
}
