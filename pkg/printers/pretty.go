// Package printers renders habits for the plain command line output.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/streak/pkg/habit"
	"tableflip.dev/streak/pkg/icons"
	"tableflip.dev/streak/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
	Icons  *icons.Catalog
}

var (
	spacing = strings.Repeat(" ", len("2b1f6a2c-8f1e-4d7a-9f0b-3c5d7e9a1b2c  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" habit")
	default:
		_, _ = c.Println(" habits")
	}
}

// Habits prints the list in stored order, one row per habit, with today's
// toggle state and the running streak.
func (pp *PrettyPrint) Habits(habits ...*habit.Habit) {
	if len(habits) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	today := timeutil.Today()
	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "

	header := []interface{}{bold.Sprint("Habit"), bold.Sprint("Today"), bold.Sprint("Streak")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)

	for _, h := range habits {
		row := []interface{}{pp.label(h), todayMark(h, today), streakLabel(h, today)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(h.ID)}, row...)
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) label(h *habit.Habit) string {
	if pp.Icons == nil {
		return h.Title
	}
	return fmt.Sprintf("%s %s", pp.Icons.Lookup(h.IconID).Symbol, h.Title)
}

func todayMark(h *habit.Habit, today string) string {
	if h.CompletedDates.Has(today) {
		return color.New(color.FgGreen).Sprint("✓")
	}
	return color.New(color.Faint).Sprint("·")
}

func streakLabel(h *habit.Habit, today string) string {
	n := habit.StreakThrough(h.CompletedDates, today)
	if n == 0 {
		return color.New(color.Faint).Sprint("-")
	}
	return fmt.Sprintf("%d", n)
}
