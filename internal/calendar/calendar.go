// Package calendar derives the month grid shown by the presentation layer.
package calendar

import (
	"github.com/idilsaglam/steps/internal/catalog"
	"github.com/idilsaglam/steps/internal/dates"
	"github.com/idilsaglam/steps/internal/nav"
	"github.com/idilsaglam/steps/internal/tracking"
)

// Weekdays are the column headers, Sunday first.
var Weekdays = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Mark is one item's state inside a day cell.
type Mark struct {
	Item    catalog.Entry
	Checked bool
}

// Cell is one grid position. Day is 0 for the leading placeholders.
type Cell struct {
	Day     int
	DateKey string
	IsToday bool
	Marks   []Mark
}

// Placeholder reports whether the cell pads the first week.
func (c Cell) Placeholder() bool { return c.Day == 0 }

// Input is everything Build depends on.
type Input struct {
	Nav     nav.State
	Catalog *catalog.Catalog
	Store   tracking.Store
	Today   string // date key of today
}

// Month is the derived grid of one month.
type Month struct {
	Year     int
	Month    int
	Selected catalog.Entry // zero in overview mode
	Cells    []Cell
}

// Build derives the grid. It is a pure function of in: callers rebuild it
// whenever the month, the selection or the store changes.
func Build(in Input) Month {
	year, month := in.Nav.Year, in.Nav.Month
	items := in.Catalog.Entries()
	selected, detail := in.Nav.Selected()
	if detail {
		items = []catalog.Entry{selected}
	}

	lead := dates.FirstWeekday(year, month)
	days := dates.DaysInMonth(year, month)
	cells := make([]Cell, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		key := dates.Key(year, month, d)
		marks := make([]Mark, len(items))
		for i, it := range items {
			marks[i] = Mark{Item: it, Checked: in.Store.Checked(it.ID(), key)}
		}
		cells = append(cells, Cell{
			Day:     d,
			DateKey: key,
			IsToday: key == in.Today,
			Marks:   marks,
		})
	}
	return Month{Year: year, Month: month, Selected: selected, Cells: cells}
}

// Weeks splits the cells into rows of seven, padding the last row with
// placeholders.
func (m Month) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(m.Cells); i += 7 {
		row := make([]Cell, 7)
		copy(row, m.Cells[i:min(i+7, len(m.Cells))])
		weeks = append(weeks, row)
	}
	return weeks
}

// Day returns the cell of a 1-based day.
func (m Month) Day(day int) (Cell, bool) {
	lead := 0
	for lead < len(m.Cells) && m.Cells[lead].Placeholder() {
		lead++
	}
	i := lead + day - 1
	if day < 1 || i >= len(m.Cells) {
		return Cell{}, false
	}
	return m.Cells[i], true
}

// DaysInMonth is the number of real (non placeholder) cells.
func (m Month) DaysInMonth() int { return dates.DaysInMonth(m.Year, m.Month) }
