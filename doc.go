// Package ratingbar draws rating bars: a row of stars, circles, squares or
// hearts that are fully, partially or not filled to represent a
// fractional rating, with optional drag-to-set interaction.
//
// # Quick Start
//
//	import "github.com/gogpu/ratingbar"
//
//	rating := 2.5
//	bar, err := ratingbar.New(func(r float64) { rating = r },
//	    ratingbar.WithStepSize(0.5),
//	    ratingbar.WithSize(50),
//	    ratingbar.WithShape(ratingbar.ShapeHeart),
//	)
//	if err != nil {
//	    return err
//	}
//	img, err := bar.Render(rating)
//
// # Rendering Model
//
// The bar holds no rating. The host owns the value, passes it to Draw or
// Render on every frame and updates it from the change callback. Fill
// states are recomputed from scratch on every draw by [FillStates].
//
// A partially filled slot is split by a vertical line: columns left of the
// line are painted with the select color, the rest with the unselect color.
// This applies to every shape, so a half-filled circle is a left/right
// split rather than a gauge.
//
// Shapes are rasterized with github.com/gogpu/gg. Rasterized slots are
// kept in a process-wide LRU keyed by shape, size and colors, so redrawing
// an unchanged bar reuses them; see [LayerCacheStats].
//
// # Interaction
//
// [Bar.HandlePointer] consumes pointer events in bar-local coordinates.
// A press inside the bar starts a gesture; every press and drag event
// reports a quantized rating through the callback. Indicator or disabled
// bars ignore input.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the bar
//   - X increases right, Y increases down
//   - Sizes are in device pixels after density scaling
package ratingbar
