package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/steps/internal/store"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db", "steps.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestGetMissing(t *testing.T) {
	s, _ := openTemp(t)
	_, err := s.Get(context.Background(), "stepsData")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPutOverwrites(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "stepsData", []byte(`{"JAVA":{"2024-06-15":true}}`)))
	require.NoError(t, s.Put(ctx, "stepsData", []byte(`{"JAVA":{"2024-06-15":false}}`)))

	got, err := s.Get(ctx, "stepsData")
	require.NoError(t, err)
	assert.JSONEq(t, `{"JAVA":{"2024-06-15":false}}`, string(got))
}

func TestReopenKeepsData(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "stepsData", []byte(`{}`)))
	require.NoError(t, s.Close())

	// migrations are idempotent on an existing database
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(ctx, "stepsData")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))
}
