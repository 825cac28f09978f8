package reorder

import "testing"

// stack lays out n card rects of the given height, top to bottom, with a
// one-unit gap, and removes the card at skip (the dragged card).
func stack(n int, height float64, skip int) []Rect {
	var rects []Rect
	top := 0.0
	for i := 0; i < n; i++ {
		if i == skip {
			continue
		}
		rects = append(rects, Rect{Top: top, Height: height})
		top += height + 1
	}
	return rects
}

func TestDragMovesCardDown(t *testing.T) {
	var d Drag
	// Four cards of height 10; drag the first.
	if !d.Begin(0, Rect{Top: 0, Height: 10}, 5) {
		t.Fatalf("begin should succeed from idle")
	}
	siblings := stack(4, 10, 0)

	// Pointer deep into the second sibling's slot: card center below its
	// center, so the placeholder lands after it.
	d.Move(20, siblings)
	if got := d.Release(); got != 2 {
		t.Fatalf("expected insertion point 2, got %d", got)
	}
	from, to, moved := d.Settle()
	if !moved || from != 0 || to != 2 {
		t.Fatalf("expected move 0 -> 2, got %d -> %d moved=%v", from, to, moved)
	}
	if d.State() != Idle {
		t.Fatalf("settle must return to idle")
	}
}

func TestDragMovesCardUp(t *testing.T) {
	var d Drag
	// Drag the last of four cards to the very top.
	if !d.Begin(3, Rect{Top: 33, Height: 10}, 38) {
		t.Fatalf("begin: %v", d.State())
	}
	siblings := stack(4, 10, 3)
	d.Move(5, siblings) // card center at ~0: above the first sibling's center
	d.Release()
	from, to, moved := d.Settle()
	if !moved || from != 3 || to != 0 {
		t.Fatalf("expected move 3 -> 0, got %d -> %d moved=%v", from, to, moved)
	}
}

func TestZeroMovementSettlesWithoutReorder(t *testing.T) {
	var d Drag
	d.Begin(1, Rect{Top: 11, Height: 10}, 15)
	siblings := stack(3, 10, 1)
	d.Move(15, siblings) // no net movement
	d.Release()
	from, to, moved := d.Settle()
	if moved {
		t.Fatalf("zero-movement drag must not reorder, got %d -> %d", from, to)
	}
	if d.State() != Idle {
		t.Fatalf("machine must settle back to idle")
	}
}

func TestNoOverlapKeepsPlaceholder(t *testing.T) {
	var d Drag
	d.Begin(0, Rect{Top: 0, Height: 10}, 5)
	siblings := stack(2, 10, 0)
	// Pointer far below every sibling: nothing overlaps, placeholder stays.
	if got := d.Move(500, siblings); got != 0 {
		t.Fatalf("expected placeholder unchanged, got %d", got)
	}
}

func TestDragsSerialize(t *testing.T) {
	var d Drag
	if !d.Begin(0, Rect{Top: 0, Height: 10}, 5) {
		t.Fatalf("first begin should succeed")
	}
	if d.Begin(1, Rect{Top: 11, Height: 10}, 15) {
		t.Fatalf("begin while dragging must be ignored")
	}
	d.Release()
	if d.Begin(1, Rect{Top: 11, Height: 10}, 15) {
		t.Fatalf("begin while settling must be ignored")
	}
	d.Settle()
	if !d.Begin(1, Rect{Top: 11, Height: 10}, 15) {
		t.Fatalf("begin should succeed again once idle")
	}
}

func TestMoveIgnoredWhenNotDragging(t *testing.T) {
	var d Drag
	if got := d.Move(10, stack(2, 10, 0)); got != 0 {
		t.Fatalf("move before begin should report the zero insertion point")
	}
	if d.State() != Idle {
		t.Fatalf("move must not start a drag")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	var d Drag
	d.Begin(0, Rect{Top: 0, Height: 10}, 5)
	d.Cancel()
	d.Cancel()
	if d.State() != Idle {
		t.Fatalf("cancel should return to idle")
	}
	if _, _, moved := d.Settle(); moved {
		t.Fatalf("settle after cancel must be a no-op")
	}
}
