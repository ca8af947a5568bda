package ratingbar

import (
	"fmt"
	"log/slog"
)

// PointerKind is the type of a pointer event.
type PointerKind int

const (
	// PointerDown is a press: mouse button down or touch start.
	PointerDown PointerKind = iota

	// PointerMove is a pointer movement. Moves only count while a
	// gesture started by PointerDown is active.
	PointerMove

	// PointerUp is a release. It reports its position and ends the gesture.
	PointerUp

	// PointerCancel ends the gesture without reporting.
	PointerCancel
)

// String returns the event kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(k))
	}
}

// PointerEvent is a pointer event in bar-local coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// HandlePointer feeds one pointer event to the bar and returns the
// reported rating, if any.
//
// Indicator and disabled bars ignore all input. A PointerDown inside the
// bar starts a gesture. PointerDown, every PointerMove of an active
// gesture and the closing PointerUp each report Quantize(X) and invoke
// the change callback; a drag that leaves the bar keeps reporting with
// the rating clamped to [0, count].
func (b *Bar) HandlePointer(ev PointerEvent) (float64, bool) {
	if !b.Interactive() {
		b.dragging = false
		return 0, false
	}

	switch ev.Kind {
	case PointerDown:
		if !b.Contains(ev.X, ev.Y) {
			return 0, false
		}
		b.dragging = true
		Logger().Debug("ratingbar: gesture started", slog.Float64("x", ev.X))
	case PointerMove:
		if !b.dragging {
			return 0, false
		}
	case PointerUp:
		if !b.dragging {
			return 0, false
		}
		b.dragging = false
		Logger().Debug("ratingbar: gesture ended", slog.Float64("x", ev.X))
	case PointerCancel:
		if b.dragging {
			Logger().Debug("ratingbar: gesture cancelled")
		}
		b.dragging = false
		return 0, false
	default:
		return 0, false
	}

	rating := b.Quantize(ev.X)
	Logger().Debug("ratingbar: rating reported",
		slog.String("event", ev.Kind.String()),
		slog.Float64("rating", rating))
	if b.onChange != nil {
		b.onChange(rating)
	}
	return rating, true
}

// Dragging reports whether a gesture is in progress.
func (b *Bar) Dragging() bool { return b.dragging }
