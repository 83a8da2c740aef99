// Package tracking is the completion data model: item -> date key -> done.
//
// A Store is treated as immutable once built. Toggle returns a new Store
// sharing every inner map except the one it changed, so earlier values stay
// valid snapshots.
package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/idilsaglam/steps/internal/log"
	"github.com/idilsaglam/steps/internal/model"
	"github.com/idilsaglam/steps/internal/store"
)

// SlotKey is the storage key holding the serialized store.
const SlotKey = "stepsData"

// Store maps item -> date key -> completed. A missing entry means not done.
// Entries are never removed: toggling off records false.
type Store map[model.ItemID]map[string]bool

// Empty returns a store with no recorded dates.
func Empty() Store { return Store{} }

// Lookup distinguishes "never recorded" from "recorded false".
func (s Store) Lookup(item model.ItemID, key string) (checked, recorded bool) {
	days, ok := s[item]
	if !ok {
		return false, false
	}
	checked, recorded = days[key]
	return checked, recorded
}

// Checked reports whether item is done on key; absent counts as false.
func (s Store) Checked(item model.ItemID, key string) bool {
	checked, _ := s.Lookup(item, key)
	return checked
}

// Toggle returns a new store with s[item][key] negated. s is not modified.
func Toggle(s Store, item model.ItemID, key string) Store {
	out := make(Store, len(s)+1)
	for id, days := range s {
		out[id] = days
	}
	prev := s[item]
	days := make(map[string]bool, len(prev)+1)
	for k, v := range prev {
		days[k] = v
	}
	days[key] = !prev[key]
	out[item] = days
	return out
}

// CountCompleted is the number of dates recorded true for item.
func CountCompleted(s Store, item model.ItemID) int {
	n := 0
	for _, done := range s[item] {
		if done {
			n++
		}
	}
	return n
}

// Encode renders the store in its persisted JSON shape.
func Encode(s Store) ([]byte, error) {
	if s == nil {
		s = Empty()
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses the persisted JSON shape. Anything else is an error; the
// caller decides how to recover.
func Decode(b []byte) (Store, error) {
	var raw map[model.ItemID]map[string]bool
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	out := make(Store, len(raw))
	for id, days := range raw {
		if days == nil {
			days = map[string]bool{}
		}
		out[id] = days
	}
	return out, nil
}

// Load reads the store from slot. It never fails: a missing, unreadable or
// malformed blob yields an empty store, logged at warn level.
func Load(ctx context.Context, slot store.Slot, logger *log.Logger) Store {
	b, err := slot.Get(ctx, SlotKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Warn("read tracking data, starting empty", "key", SlotKey, "error", err)
		}
		return Empty()
	}
	s, err := Decode(b)
	if err != nil {
		logger.Warn("malformed tracking data, starting empty", "key", SlotKey, "error", err, "bytes", len(b))
		return Empty()
	}
	return s
}

// Save overwrites the slot with the whole store.
func Save(ctx context.Context, slot store.Slot, s Store) error {
	b, err := Encode(s)
	if err != nil {
		return err
	}
	if err := slot.Put(ctx, SlotKey, b); err != nil {
		return fmt.Errorf("save tracking data: %w", err)
	}
	return nil
}
