// Package nav holds the displayed month and the selected item. It is
// ephemeral UI state and is never persisted.
package nav

import (
	"time"

	"github.com/idilsaglam/steps/internal/catalog"
)

// State is the displayed (Year, Month) with Month zero-indexed, plus the
// selection. A zero selection means overview mode.
type State struct {
	Year     int
	Month    int
	selected catalog.Entry
}

// New shows now's month in overview mode.
func New(now time.Time) State {
	return State{Year: now.Year(), Month: int(now.Month()) - 1}
}

// Selected returns the selected item, or false in overview mode.
func (s State) Selected() (catalog.Entry, bool) {
	return s.selected, !s.selected.IsZero()
}

// IsOverview reports whether no item is selected.
func (s State) IsOverview() bool { return s.selected.IsZero() }

// ChangeMonth moves the displayed month by delta, rolling over years, and
// drops back to overview.
func ChangeMonth(s State, delta int) State {
	total := s.Year*12 + s.Month + delta
	year, month := total/12, total%12
	if month < 0 {
		month += 12
		year--
	}
	return State{Year: year, Month: month}
}

// SelectItem switches to detail mode for e. A zero Entry means overview.
// The displayed month is unchanged.
func SelectItem(s State, e catalog.Entry) State {
	s.selected = e
	return s
}

// Overview clears the selection.
func Overview(s State) State {
	return SelectItem(s, catalog.Entry{})
}

// Cycle steps the selection through overview, then every item in catalog
// order, wrapping around. delta is +1 or -1.
func Cycle(s State, c *catalog.Catalog, delta int) State {
	// position 0 is overview, 1..n are items
	n := c.Len() + 1
	pos := 0
	if e, ok := s.Selected(); ok {
		pos = e.Index() + 1
	}
	pos = ((pos+delta)%n + n) % n
	if pos == 0 {
		return Overview(s)
	}
	e, _ := c.At(pos - 1)
	return SelectItem(s, e)
}

// JumpTo shows t's month. The selection survives only if the month is
// already displayed.
func JumpTo(s State, t time.Time) State {
	year, month := t.Year(), int(t.Month())-1
	if year == s.Year && month == s.Month {
		return s
	}
	return State{Year: year, Month: month}
}
