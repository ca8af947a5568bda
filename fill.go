package ratingbar

import (
	"fmt"
	"math"
)

// FillKind describes how much of a slot is painted with the select color.
type FillKind int

const (
	// FillEmpty paints the whole shape with the unselect color.
	FillEmpty FillKind = iota

	// FillPartial splits the shape at Fraction of its width.
	FillPartial

	// FillFull paints the whole shape with the select color.
	FillFull
)

// String returns the fill kind name.
func (k FillKind) String() string {
	switch k {
	case FillEmpty:
		return "empty"
	case FillPartial:
		return "partial"
	case FillFull:
		return "full"
	default:
		return fmt.Sprintf("FillKind(%d)", int(k))
	}
}

// FillState is the derived fill of one slot.
// Fraction is 1 for full slots, 0 for empty slots and in (0, 1) for
// partial slots.
type FillState struct {
	Kind     FillKind
	Fraction float64
}

// Full returns a fully filled state.
func Full() FillState { return FillState{Kind: FillFull, Fraction: 1} }

// Empty returns an unfilled state.
func Empty() FillState { return FillState{Kind: FillEmpty} }

// Partial returns a partially filled state. Fractions outside (0, 1)
// collapse to Empty or Full.
func Partial(fraction float64) FillState {
	switch {
	case fraction <= 0:
		return Empty()
	case fraction >= 1:
		return Full()
	}
	return FillState{Kind: FillPartial, Fraction: fraction}
}

// String implements fmt.Stringer.
func (f FillState) String() string {
	if f.Kind == FillPartial {
		return fmt.Sprintf("partial(%g)", f.Fraction)
	}
	return f.Kind.String()
}

// FillStates derives the fill of every slot from rating.
//
// With fullCount = trunc(rating), slots 1..fullCount are full, slot
// fullCount+1 is partial when rating has a positive fractional part, and
// the remaining slots are empty. Ratings above count fill every slot;
// negative ratings and NaN fill none. A non-positive count yields no slots.
func FillStates(rating float64, count int) []FillState {
	if count <= 0 {
		return nil
	}
	if math.IsNaN(rating) {
		rating = 0
	}
	rating = max(0, min(rating, float64(count)))
	fullCount := int(rating)
	fraction := rating - float64(fullCount)

	states := make([]FillState, count)
	for i := 1; i <= count; i++ {
		switch {
		case i <= fullCount:
			states[i-1] = Full()
		case i == fullCount+1 && fraction > 0:
			states[i-1] = FillState{Kind: FillPartial, Fraction: fraction}
		default:
			states[i-1] = Empty()
		}
	}
	return states
}
