package ratingbar

import (
	"math"

	"github.com/gogpu/gg"
)

const (
	starPoints      = 5
	starInnerRatio  = 0.5
	starAngleOffset = -18.0 // degrees
)

// ShapePath returns the outline of shape in slot coordinates.
// The slot is a size×size square with its origin at the top-left; the
// star, circle and square occupy the inner square left after removing
// borderWidth from every side; the heart uses an inner-sized square at
// the slot origin.
func ShapePath(shape ShapeType, size, borderWidth float64) *gg.Path {
	inner := innerSize(size, borderWidth)
	p := gg.NewPath()
	switch shape {
	case ShapeCircle:
		p.Circle(size/2, size/2, inner/2)
	case ShapeSquare:
		p.Rectangle(borderWidth, borderWidth, inner, inner)
	case ShapeHeart:
		// The heart is not inset by the border.
		heartPath(p, 0, 0, inner)
	default:
		starPath(p, size/2, size/2, inner/2)
	}
	return p
}

// innerSize is the side of the square the shape is drawn in.
func innerSize(size, borderWidth float64) float64 {
	return math.Max(size-2*borderWidth, 0)
}

// starPath appends a five-point star centred at (cx, cy).
// Outer vertices sit every 72° starting at -18°, inner vertices halfway
// between them at half the radius.
func starPath(p *gg.Path, cx, cy, outer float64) {
	inner := outer * starInnerRatio
	step := 360.0 / starPoints
	for i := 0; i < starPoints; i++ {
		oa := degToRad(starAngleOffset + float64(i)*step)
		ia := degToRad(starAngleOffset + float64(i)*step + step/2)

		ox, oy := cx+outer*math.Cos(oa), cy+outer*math.Sin(oa)
		if i == 0 {
			p.MoveTo(ox, oy)
		} else {
			p.LineTo(ox, oy)
		}
		p.LineTo(cx+inner*math.Cos(ia), cy+inner*math.Sin(ia))
	}
	p.Close()
}

// heartPath appends a heart inside the w×w square at (x, y): two mirrored
// cubic lobes that meet at the notch (w/2, 0.3w) and the tip (w/2, 0.9w).
// The control points reach outside the square, so the lobes are slightly
// narrower than w.
func heartPath(p *gg.Path, x, y, w float64) {
	pt := func(fx, fy float64) (float64, float64) { return x + fx*w, y + fy*w }

	p.MoveTo(pt(0.5, 0.9))

	c1x, c1y := pt(-0.5, 0.4)
	c2x, c2y := pt(0.25, -0.3)
	ex, ey := pt(0.5, 0.3)
	p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)

	c1x, c1y = pt(0.75, -0.3)
	c2x, c2y = pt(1.5, 0.4)
	ex, ey = pt(0.5, 0.9)
	p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)

	p.Close()
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// appendPath replays the elements of p onto the current path of dc.
func appendPath(dc *gg.Context, p *gg.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}
