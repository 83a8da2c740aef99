// Package stats derives the per-item completion counts panel.
package stats

import (
	"github.com/idilsaglam/steps/internal/catalog"
	"github.com/idilsaglam/steps/internal/tracking"
)

// Count is the number of completed days of one item.
type Count struct {
	Item  catalog.Entry
	Count int
}

// Build returns one Count per catalog item, in catalog order.
func Build(c *catalog.Catalog, s tracking.Store) []Count {
	entries := c.Entries()
	out := make([]Count, len(entries))
	for i, e := range entries {
		out[i] = Count{Item: e, Count: tracking.CountCompleted(s, e.ID())}
	}
	return out
}

// Max is the largest count, used to scale bars.
func Max(counts []Count) int {
	m := 0
	for _, c := range counts {
		if c.Count > m {
			m = c.Count
		}
	}
	return m
}

// Total sums every count.
func Total(counts []Count) int {
	n := 0
	for _, c := range counts {
		n += c.Count
	}
	return n
}
