package tracking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/steps/internal/log"
	"github.com/idilsaglam/steps/internal/store"
)

// memSlot is an in-memory store.Slot with switchable failures.
type memSlot struct {
	data   map[string][]byte
	getErr error
	putErr error
	puts   int
}

func newMemSlot() *memSlot { return &memSlot{data: map[string][]byte{}} }

func (m *memSlot) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return b, nil
}

func (m *memSlot) Put(_ context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memSlot) Close() error { return nil }

func TestLookupThreeStates(t *testing.T) {
	s := Store{"GYM": {"2024-06-15": true, "2024-06-16": false}}

	checked, recorded := s.Lookup("GYM", "2024-06-15")
	assert.True(t, checked)
	assert.True(t, recorded)

	checked, recorded = s.Lookup("GYM", "2024-06-16")
	assert.False(t, checked)
	assert.True(t, recorded)

	checked, recorded = s.Lookup("GYM", "2024-06-17")
	assert.False(t, checked)
	assert.False(t, recorded)

	_, recorded = s.Lookup("JAVA", "2024-06-15")
	assert.False(t, recorded)
	assert.False(t, s.Checked("JAVA", "2024-06-15"))
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	orig := Store{"GYM": {"2024-06-15": true}, "JAVA": {"2024-06-01": true}}

	next := Toggle(orig, "GYM", "2024-06-15")

	assert.True(t, orig.Checked("GYM", "2024-06-15"))
	assert.False(t, next.Checked("GYM", "2024-06-15"))
	assert.True(t, next.Checked("JAVA", "2024-06-01"))
	assert.Len(t, orig["GYM"], 1)

	next2 := Toggle(Empty(), "PYTHON", "2024-01-01")
	assert.True(t, next2.Checked("PYTHON", "2024-01-01"))
}

func TestToggleOffKeepsKey(t *testing.T) {
	s := Toggle(Empty(), "JAVA", "2024-06-15")
	s = Toggle(s, "JAVA", "2024-06-15")

	checked, recorded := s.Lookup("JAVA", "2024-06-15")
	assert.False(t, checked)
	assert.True(t, recorded)
}

func TestDoubleToggleIsIdentity(t *testing.T) {
	stores := []Store{
		Empty(),
		{"GYM": {"2024-06-15": true}},
		{"GYM": {"2024-06-15": false}},
	}
	for _, s := range stores {
		before := s.Checked("GYM", "2024-06-15")
		after := Toggle(Toggle(s, "GYM", "2024-06-15"), "GYM", "2024-06-15")
		assert.Equal(t, before, after.Checked("GYM", "2024-06-15"))
	}
}

func TestCountCompleted(t *testing.T) {
	s := Empty()
	s = Toggle(s, "JAVA", "2024-06-01")
	s = Toggle(s, "JAVA", "2024-06-02")
	s = Toggle(s, "JAVA", "2024-06-01")

	assert.Equal(t, 1, CountCompleted(s, "JAVA"))
	assert.Equal(t, 0, CountCompleted(s, "GYM"))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
		want    Store
	}{
		{name: "object", in: `{"GYM":{"2024-06-15":true,"2024-06-16":false}}`, want: Store{"GYM": {"2024-06-15": true, "2024-06-16": false}}},
		{name: "empty object", in: `{}`, want: Store{}},
		{name: "null", in: `null`, want: Store{}},
		{name: "null inner", in: `{"GYM":null}`, want: Store{"GYM": {}}},
		{name: "not json", in: `hello`, wantErr: true},
		{name: "array", in: `[1,2]`, wantErr: true},
		{name: "string values", in: `{"GYM":{"2024-06-15":"yes"}}`, wantErr: true},
		{name: "flat map", in: `{"GYM":true}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeShape(t *testing.T) {
	b, err := Encode(Store{"JAVA": {"2024-06-15": true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"JAVA":{"2024-06-15":true}}`, string(b))

	b, err = Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	logger := log.Discard()

	slot := newMemSlot()
	assert.Equal(t, Empty(), Load(ctx, slot, logger), "absent")

	slot.data[SlotKey] = []byte("not json at all")
	assert.Equal(t, Empty(), Load(ctx, slot, logger), "malformed")

	slot.data[SlotKey] = []byte(`{"GYM":{"2024-06-15":true}}`)
	assert.True(t, Load(ctx, slot, logger).Checked("GYM", "2024-06-15"))

	slot.getErr = errors.New("disk on fire")
	assert.Equal(t, Empty(), Load(ctx, slot, logger), "read failure")
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	slot := newMemSlot()

	s := Toggle(Empty(), "JAVA", "2024-06-15")
	require.NoError(t, Save(ctx, slot, s))
	assert.JSONEq(t, `{"JAVA":{"2024-06-15":true}}`, string(slot.data[SlotKey]))

	slot.putErr = errors.New("read-only")
	err := Save(ctx, slot, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, slot.putErr)
}
