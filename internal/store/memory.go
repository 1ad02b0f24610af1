// internal/store/memory.go
//
// In-memory implementation of the run Store interface.
// Live solve runs (including full Results) are kept here for the process
// lifetime; durable summaries go to SQLite separately.
//
// Characteristics:
//   - Stores *runs.Run objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Errors are returned for missing run IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/absurdle/go-solver/internal/runs"
)

// ErrNotFound is returned by Get for unknown run IDs.
var ErrNotFound = errors.New("store: run not found")

// Store defines the in-process registry for solve runs.
type Store interface {
	// Save persists or updates a run.
	Save(ctx context.Context, r *runs.Run) error

	// Get retrieves a run by ID.
	// Returns ErrNotFound if the run is unknown.
	Get(ctx context.Context, id string) (*runs.Run, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex         // guards items map
	items map[string]*runs.Run // keyed by Run.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{items: make(map[string]*runs.Run)}
}

// Save adds or updates the run in the map.
func (m *memory) Save(ctx context.Context, r *runs.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[r.ID] = r
	return nil
}

// Get looks up a run by ID.
func (m *memory) Get(ctx context.Context, id string) (*runs.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.items[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}
