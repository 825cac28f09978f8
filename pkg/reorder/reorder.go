// Package reorder implements the pointer-driven card reordering machine.
// The dragged card follows the pointer; a placeholder marks where it will
// land, computed from which sibling the card overlaps most. Animation is
// presentation; this package only decides the permutation.
package reorder

import "math"

// State of the drag machine.
type State int

const (
	Idle State = iota
	Dragging
	Settling
)

// OverlapTolerance widens the overlap test so a card brushing a sibling's
// edge still counts, instead of requiring exact containment.
const OverlapTolerance = 2.0

// Rect is a card's vertical extent in the stack.
type Rect struct {
	Top    float64
	Height float64
}

func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

func (r Rect) Center() float64 {
	return r.Top + r.Height/2
}

// Drag tracks one reorder interaction. Zero value is Idle and ready.
//
// Geometry convention: siblings are the other cards in list order with
// the dragged card removed, so an insertion point k means "before
// sibling k" and k == len(siblings) appends at the end.
type Drag struct {
	state       State
	sourceIndex int
	insertAt    int
	grabOffset  float64
	cardHeight  float64
}

// State reports the current machine state.
func (d *Drag) State() State {
	return d.state
}

// Begin starts a drag of the card at index. The pointer position and the
// card's rect fix the grab offset so the card tracks the pointer without
// jumping. Returns false while another drag is in flight: rapid
// successive drags serialize by ignoring extra pointer-downs.
func (d *Drag) Begin(index int, card Rect, pointer float64) bool {
	if d.state != Idle || index < 0 {
		return false
	}
	d.sourceIndex = index
	d.insertAt = index
	d.grabOffset = pointer - card.Top
	d.cardHeight = card.Height
	d.state = Dragging
	return true
}

// Move recomputes the insertion point for the current pointer position.
// siblings are the resting rects of every other card, in order. The
// placeholder moves next to the overlapping sibling whose center is
// nearest the dragged card's center; with no overlapping sibling the
// previous insertion point stands. Returns the (possibly unchanged)
// insertion point.
func (d *Drag) Move(pointer float64, siblings []Rect) int {
	if d.state != Dragging {
		return d.insertAt
	}
	dragged := Rect{Top: pointer - d.grabOffset, Height: d.cardHeight}

	best := -1
	bestDist := math.Inf(1)
	for i, sib := range siblings {
		overlap := math.Min(dragged.Bottom(), sib.Bottom()) - math.Max(dragged.Top, sib.Top)
		if overlap < -OverlapTolerance {
			continue
		}
		dist := math.Abs(dragged.Center() - sib.Center())
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	if best >= 0 {
		if dragged.Center() <= siblings[best].Center() {
			d.insertAt = best
		} else {
			d.insertAt = best + 1
		}
	}
	return d.insertAt
}

// Release ends pointer tracking and enters Settling while the UI animates
// the card into the placeholder slot. Returns the final insertion point.
func (d *Drag) Release() int {
	if d.state == Dragging {
		d.state = Settling
	}
	return d.insertAt
}

// Settle completes the interaction and returns the permutation to apply:
// a single-element move from `from` to `to`. moved is false for a
// zero-net-movement drag, which must still settle cleanly and not
// reorder.
func (d *Drag) Settle() (from, to int, moved bool) {
	if d.state != Settling {
		return 0, 0, false
	}
	from = d.sourceIndex
	to = d.insertAt
	d.state = Idle
	return from, to, from != to
}

// Cancel aborts the interaction from any state, e.g. when the list is
// replaced underneath an in-flight drag. Idempotent.
func (d *Drag) Cancel() {
	d.state = Idle
}
