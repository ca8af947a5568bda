package ratingbar

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/ratingbar/internal/layercache"
)

// layers holds rasterized slots shared by every bar in the process.
var layers = layercache.New(layercache.DefaultCapacity)

// LayerCacheStats reports how often slot layers were reused.
func LayerCacheStats() layercache.Stats {
	return layers.Stats()
}

// ShapeStyle holds the appearance of a single slot.
type ShapeStyle struct {
	// Size is the side of the square slot in device pixels.
	Size float64

	// BorderWidth is the outline width. Zero disables the outline.
	BorderWidth float64

	Select   gg.RGBA
	Unselect gg.RGBA
	Border   gg.RGBA
}

// pixelSize is the side of the raster a slot is drawn into.
func (s ShapeStyle) pixelSize() int {
	if !(s.Size > 0) || math.IsInf(s.Size, 1) {
		return 0
	}
	return int(math.Ceil(s.Size))
}

// SplitColumn returns the slot-local pixel column where a partial fill
// switches from the select to the unselect color. Columns before it are
// selected. The split is measured from the slot's left edge over the inner
// width, so with a border it falls left of the shape's own midpoint.
func (s ShapeStyle) SplitColumn(fraction float64) int {
	x := fraction * innerSize(s.Size, s.BorderWidth)
	col := int(math.Round(x))
	return max(0, min(col, s.pixelSize()))
}

// DrawShape paints one slot of shape into dst with the slot's top-left
// corner at at.
//
// A full slot is painted with the select color and an empty slot with the
// unselect color. A partial slot takes the columns left of
// SplitColumn(fraction) from a select rendering and the rest from an
// unselect rendering. When BorderWidth is positive the outline is stroked
// with the border color before the fill.
func DrawShape(dst draw.Image, at image.Point, shape ShapeType, fill FillState, style ShapeStyle) error {
	px := style.pixelSize()
	if px <= 0 {
		return nil
	}
	slot := image.Rect(at.X, at.Y, at.X+px, at.Y+px)

	switch fill.Kind {
	case FillFull:
		return paintSlot(dst, slot, slot, shape, style.Select, style)
	case FillPartial:
		split := slot.Min.X + style.SplitColumn(fill.Fraction)
		left := image.Rect(slot.Min.X, slot.Min.Y, split, slot.Max.Y)
		right := image.Rect(split, slot.Min.Y, slot.Max.X, slot.Max.Y)
		if err := paintSlot(dst, slot, left, shape, style.Select, style); err != nil {
			return err
		}
		return paintSlot(dst, slot, right, shape, style.Unselect, style)
	default:
		return paintSlot(dst, slot, slot, shape, style.Unselect, style)
	}
}

// paintSlot composites the part of the shape layer filled with col that
// falls inside region onto dst.
func paintSlot(dst draw.Image, slot, region image.Rectangle, shape ShapeType, col gg.RGBA, style ShapeStyle) error {
	if region.Empty() {
		return nil
	}
	key := layercache.Key{
		Shape:       int(shape),
		Size:        style.Size,
		BorderWidth: style.BorderWidth,
		Fill:        col,
		Border:      style.Border,
	}
	layer, err := layers.GetOrCreate(key, func() (image.Image, error) {
		return rasterize(ShapePath(shape, style.Size, style.BorderWidth), col, style)
	})
	if err != nil {
		return err
	}
	sp := region.Min.Sub(slot.Min)
	draw.Draw(dst, region, layer, sp, draw.Over)
	return nil
}

// rasterize renders the outline and fill of path into a slot-sized image.
// The result is stored in the layer cache and must not be modified.
func rasterize(path *gg.Path, col gg.RGBA, style ShapeStyle) (image.Image, error) {
	px := style.pixelSize()
	dc := gg.NewContext(px, px)

	if style.BorderWidth > 0 {
		appendPath(dc, path)
		dc.SetColor(style.Border.Color())
		dc.SetLineWidth(style.BorderWidth)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("ratingbar: stroke outline: %w", err)
		}
	}

	appendPath(dc, path)
	dc.SetColor(col.Color())
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("ratingbar: fill shape: %w", err)
	}

	if err := dc.Close(); err != nil {
		return nil, fmt.Errorf("ratingbar: flush slot: %w", err)
	}
	return dc.Image(), nil
}
