// Package session owns the tracking data for one interactive run. Every
// mutation goes through Toggle, which persists before returning.
package session

import (
	"context"
	"fmt"

	"github.com/idilsaglam/steps/internal/calendar"
	"github.com/idilsaglam/steps/internal/catalog"
	"github.com/idilsaglam/steps/internal/log"
	"github.com/idilsaglam/steps/internal/nav"
	"github.com/idilsaglam/steps/internal/stats"
	"github.com/idilsaglam/steps/internal/store"
	"github.com/idilsaglam/steps/internal/tracking"
)

type Session struct {
	catalog *catalog.Catalog
	slot    store.Slot
	log     *log.Logger

	data  tracking.Store
	dirty bool // in-memory data not yet persisted
}

// Open loads the tracking data from slot. Loading never fails; see
// tracking.Load.
func Open(ctx context.Context, slot store.Slot, c *catalog.Catalog, logger *log.Logger) *Session {
	logger = logger.WithComponent("session")
	data := tracking.Load(ctx, slot, logger)
	logger.Debug("tracking data loaded", "items", len(data))
	return &Session{catalog: c, slot: slot, log: logger, data: data}
}

func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Data is the current snapshot. It is never mutated afterwards.
func (s *Session) Data() tracking.Store { return s.data }

// Dirty reports whether the last write failed.
func (s *Session) Dirty() bool { return s.dirty }

// Toggle flips item on dateKey and persists the whole store. The in-memory
// change stands even if the write fails; the error is returned and the next
// Toggle or Flush writes again.
func (s *Session) Toggle(ctx context.Context, item catalog.Entry, dateKey string) error {
	s.data = tracking.Toggle(s.data, item.ID(), dateKey)
	s.log.Debug("toggled", "item", item.ID(), "date", dateKey, "checked", s.data.Checked(item.ID(), dateKey))
	return s.save(ctx)
}

// Flush retries a failed write. It is a no-op when nothing is pending.
func (s *Session) Flush(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) error {
	if err := tracking.Save(ctx, s.slot, s.data); err != nil {
		s.dirty = true
		s.log.Warn("persist failed, keeping in-memory state", "error", err)
		return fmt.Errorf("persist: %w", err)
	}
	if s.dirty {
		s.log.Info("persist recovered")
	}
	s.dirty = false
	return nil
}

// Calendar derives the month grid for n.
func (s *Session) Calendar(n nav.State, today string) calendar.Month {
	return calendar.Build(calendar.Input{
		Nav:     n,
		Catalog: s.catalog,
		Store:   s.data,
		Today:   today,
	})
}

// Stats derives the per-item counts.
func (s *Session) Stats() []stats.Count {
	return stats.Build(s.catalog, s.data)
}
