// Package viewmodel derives what the UI should show from the habit list
// and session state. Build is a pure function so the reconciliation
// logic stays testable apart from any particular toolkit; rendering
// adapters translate the result to the screen.
package viewmodel

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/streak/pkg/habit"
	"tableflip.dev/streak/pkg/icons"
	"tableflip.dev/streak/pkg/timeutil"
	"tableflip.dev/streak/pkg/ui/yeargrid"
)

// Screen identifies which of the mutually exclusive screens is visible.
type Screen int

const (
	// ScreenLoading gates the first render until hydration and the icon
	// catalog are ready.
	ScreenLoading Screen = iota
	ScreenEmpty
	ScreenStack
	ScreenForm
)

// ContrastColor is the fixed color icon glyphs are recolored to so they
// read against any habit tint.
const ContrastColor = "#ffffff"

// tintRatio is the fixed mix toward white for card backgrounds.
const tintRatio = 0.82

// UIState is the transient interaction state the view depends on beyond
// the habit list itself.
type UIState struct {
	Loading         bool
	FormOpen        bool
	EditingID       string
	PendingDeleteID string
	Width           int
}

// Card is everything needed to draw one habit.
type Card struct {
	ID          string
	Title       string
	Description string
	Color       string
	Tint        string
	IconSymbol  string
	TodayDone   bool
	Streak      int
	Geometry    yeargrid.Geometry
	Cells       []yeargrid.Cell

	// PendingDelete hides the card behind its undo affordance; the habit
	// is still in the store until the grace period runs out.
	PendingDelete bool
}

// ViewModel is the derived screen state.
type ViewModel struct {
	Screen Screen
	Today  string
	Cards  []Card
}

// Build derives the view-model. It is idempotent: the same inputs always
// produce the same output, so callers can re-render at any time to
// resynchronize the screen with state.
func Build(habits []*habit.Habit, st UIState, catalog *icons.Catalog, now time.Time) ViewModel {
	today := timeutil.DayKey(now)
	vm := ViewModel{Today: today}

	switch {
	case st.Loading:
		vm.Screen = ScreenLoading
		return vm
	case st.FormOpen:
		// The renderer never force-closes an in-progress form.
		vm.Screen = ScreenForm
	case len(habits) == 0:
		vm.Screen = ScreenEmpty
		return vm
	default:
		vm.Screen = ScreenStack
	}

	geo := yeargrid.Layout(now.Year(), st.Width)
	vm.Cards = make([]Card, 0, len(habits))
	for _, h := range habits {
		if h == nil {
			continue
		}
		vm.Cards = append(vm.Cards, buildCard(h, st, catalog, geo, today))
	}
	return vm
}

func buildCard(h *habit.Habit, st UIState, catalog *icons.Catalog, geo yeargrid.Geometry, today string) Card {
	c := Card{
		ID:            h.ID,
		Title:         h.Title,
		Description:   h.Description,
		Color:         h.Color,
		Tint:          Tint(h.Color),
		TodayDone:     h.CompletedDates.Has(today),
		Streak:        habit.StreakThrough(h.CompletedDates, today),
		Geometry:      geo,
		Cells:         yeargrid.Cells(geo.Year, h.CompletedDates, today),
		PendingDelete: st.PendingDeleteID == h.ID,
	}
	if catalog != nil {
		c.IconSymbol = catalog.Lookup(h.IconID).Symbol
	}
	return c
}

// Tint lightens a habit color toward white at the fixed card ratio. Bad
// colors tint to plain white rather than erroring mid-render.
func Tint(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ContrastColor
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendRgb(white, tintRatio).Hex()
}
