package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/streak/pkg/habit"
	"tableflip.dev/streak/pkg/timeutil"
	"tableflip.dev/streak/pkg/ui/yeargrid"
)

// YearGrid prints one habit's full-year completion grid, seven rows of
// day cells read top-to-bottom then left-to-right.
func (pp *PrettyPrint) YearGrid(on time.Time, h *habit.Habit) {
	geo := yeargrid.Layout(on.Year(), 0)
	cells := yeargrid.Cells(geo.Year, h.CompletedDates, timeutil.DayKey(on))

	pp.TitleWithDays(h, h.CompletedDates.Len())

	done := color.New(color.FgGreen)
	today := color.New(color.Bold, color.FgHiWhite)
	empty := color.New(color.Faint)

	for row := 0; row < yeargrid.Rows; row++ {
		for col := 0; col < geo.Cols; col++ {
			i := col*yeargrid.Rows + row
			if i >= len(cells) {
				break
			}
			c := cells[i]
			switch {
			case c.IsToday:
				_, _ = today.Fprint(color.Output, "■ ")
			case c.Done:
				_, _ = done.Fprint(color.Output, "■ ")
			default:
				_, _ = empty.Fprint(color.Output, "· ")
			}
		}
		_, _ = fmt.Fprintln(color.Output, "")
	}
	fmt.Println("")
}

// TitleWithDays prints a habit heading with its completion total.
func (pp *PrettyPrint) TitleWithDays(h *habit.Habit, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(pp.label(h))
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" day")
	default:
		_, _ = c.Println(" days")
	}
}
