// Package yeargrid renders a habit's full-year completion grid: one cell
// per calendar day, seven rows, a column per week.
package yeargrid

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/streak/pkg/habit"
	"tableflip.dev/streak/pkg/timeutil"
)

// Rows is fixed: seven day-cells per column.
const Rows = 7

// MinCellSize is the floor below which cells stop shrinking and the grid
// scrolls/clips instead.
const MinCellSize = 1

// Geometry is the computed grid layout for a year within a container
// width. It is recomputed on every render and on resize.
type Geometry struct {
	Year     int
	Days     int
	Cols     int
	CellSize int
}

// Layout computes the grid geometry. Column count is ceil(days/7); the
// cell size divides the available width across columns with a floor.
func Layout(year, width int) Geometry {
	days := timeutil.DaysInYear(year)
	cols := (days + Rows - 1) / Rows
	size := MinCellSize
	if cols > 0 && width/cols > size {
		size = width / cols
	}
	return Geometry{Year: year, Days: days, Cols: cols, CellSize: size}
}

// Cell is one day of the grid.
type Cell struct {
	Day     string
	Done    bool
	IsToday bool
}

// Cells produces one cell per day of the year, in order, marking
// completion membership and today.
func Cells(year int, completed habit.DaySet, today string) []Cell {
	days := timeutil.DaysInYear(year)
	cells := make([]Cell, 0, days)
	day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < days; i++ {
		key := timeutil.DayKey(day)
		cells = append(cells, Cell{
			Day:     key,
			Done:    completed.Has(key),
			IsToday: key == today,
		})
		day = day.AddDate(0, 0, 1)
	}
	return cells
}

// Options controls grid styling.
type Options struct {
	DoneStyle  lipgloss.Style
	EmptyStyle lipgloss.Style
	TodayStyle lipgloss.Style
}

const (
	doneGlyph  = "■"
	emptyGlyph = "·"
)

// Render draws the grid as Rows lines of week columns. Cells fill
// column-major: day n sits at column n/7, row n%7.
func Render(geo Geometry, cells []Cell, opts Options) string {
	lines := make([]string, 0, Rows)
	for row := 0; row < Rows; row++ {
		var b strings.Builder
		for col := 0; col < geo.Cols; col++ {
			i := col*Rows + row
			if i >= len(cells) {
				b.WriteString(" ")
				continue
			}
			b.WriteString(renderCell(cells[i], opts))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, opts Options) string {
	glyph := emptyGlyph
	style := opts.EmptyStyle
	if c.Done {
		glyph = doneGlyph
		style = opts.DoneStyle
	}
	if c.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	return style.Render(glyph)
}
