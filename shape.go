package ratingbar

import (
	"errors"
	"fmt"
	"strings"
)

// ShapeType selects the shape drawn in every slot of a bar.
type ShapeType int

const (
	// ShapeStar is a five-point star. It is the default.
	ShapeStar ShapeType = iota

	// ShapeCircle is a disc.
	ShapeCircle

	// ShapeSquare is an axis-aligned square.
	ShapeSquare

	// ShapeHeart is a heart built from two cubic curves.
	ShapeHeart
)

// ErrUnknownShape is returned when a shape name cannot be parsed.
var ErrUnknownShape = errors.New("ratingbar: unknown shape")

var shapeNames = [...]string{
	ShapeStar:   "star",
	ShapeCircle: "circle",
	ShapeSquare: "square",
	ShapeHeart:  "heart",
}

// ShapeTypes returns all shape types in declaration order.
func ShapeTypes() []ShapeType {
	return []ShapeType{ShapeStar, ShapeCircle, ShapeSquare, ShapeHeart}
}

// String returns the lower-case shape name.
func (s ShapeType) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("ShapeType(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShapeType parses a shape name. Matching is case-insensitive.
func ParseShapeType(name string) (ShapeType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range shapeNames {
		if s == n {
			return ShapeType(i), nil
		}
	}
	return ShapeStar, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s ShapeType) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(shapeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ShapeType) UnmarshalText(text []byte) error {
	v, err := ParseShapeType(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
