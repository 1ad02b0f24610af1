package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absurdle/go-solver/internal/runs"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	r := &runs.Run{ID: "abc123", Status: runs.StatusSolved}
	require.NoError(t, s.Save(ctx, r))

	got, err := s.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Same(t, r, got)

	// Save overwrites.
	r2 := &runs.Run{ID: "abc123", Status: runs.StatusExhausted}
	require.NoError(t, s.Save(ctx, r2))
	got, err = s.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, runs.StatusExhausted, got.Status)
}
