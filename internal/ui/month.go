package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/steps/internal/calendar"
	"github.com/idilsaglam/steps/internal/catalog"
	"github.com/idilsaglam/steps/internal/stats"
)

// MonthTitle is the "2024 / 6" heading of a month.
func MonthTitle(year, month int) string {
	return fmt.Sprintf("%d / %d", year, month+1)
}

// RenderMonth draws the grid. cursor is the 1-based highlighted day, 0 for
// none.
func RenderMonth(m calendar.Month, cursor int) string {
	t := Current()
	width := cellWidth(m)
	cell := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	header := make([]string, len(calendar.Weekdays))
	for i, w := range calendar.Weekdays {
		header[i] = cell.Render(t.Muted.Render(w))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for _, week := range m.Weeks() {
		cols := make([]string, len(week))
		for i, c := range week {
			cols[i] = cell.Render(renderCell(t, m, c, c.Day == cursor && cursor > 0))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cellWidth(m calendar.Month) int {
	if !m.Selected.IsZero() {
		return 6
	}
	for _, c := range m.Cells {
		if !c.Placeholder() {
			return max(len(c.Marks), 4) + 2
		}
	}
	return 6
}

func renderCell(t Theme, m calendar.Month, c calendar.Cell, cursor bool) string {
	if c.Placeholder() {
		return "\n"
	}
	day := fmt.Sprintf("%2d", c.Day)
	switch {
	case cursor:
		day = t.Selected.Render(day)
	case c.IsToday:
		day = t.Today.Render(day)
	}

	var b strings.Builder
	if m.Selected.IsZero() {
		for _, mk := range c.Marks {
			b.WriteString(t.Mark(mk.Item, mk.Checked))
		}
	} else if len(c.Marks) == 1 {
		if c.Marks[0].Checked {
			b.WriteString(t.Item(c.Marks[0].Item, t.BoxChecked))
		} else {
			b.WriteString(t.Muted.Render(t.BoxUnchecked))
		}
	}
	return day + "\n" + b.String()
}

// RenderLegend lists categories with their colored items.
func RenderLegend(c *catalog.Catalog) string {
	t := Current()
	var cols []string
	for _, cat := range c.Categories() {
		lines := []string{t.Muted.Render(cat.Name)}
		for _, id := range cat.Items {
			e, _ := c.Lookup(string(id))
			lines = append(lines, t.Item(e, t.Dot+" "+string(id)))
		}
		cols = append(cols, lipgloss.NewStyle().PaddingRight(3).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// RenderStats lists "ITEM: count" lines with a bar scaled to the largest
// count.
func RenderStats(counts []stats.Count) string {
	t := Current()
	nameWidth := 0
	for _, c := range counts {
		nameWidth = max(nameWidth, len(c.Item.String()))
	}
	top := stats.Max(counts)
	lines := []string{t.Title.Render("Statistics")}
	for _, c := range counts {
		label := fmt.Sprintf("%-*s %3d", nameWidth+1, c.Item.String()+":", c.Count)
		bar := t.Muted.Render(ProgressBar(c.Count, top, 10))
		lines = append(lines, t.Item(c.Item, label)+" "+bar)
	}
	return strings.Join(lines, "\n")
}
