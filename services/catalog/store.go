package catalog

import (
	"sync/atomic"

	"motorhub/models"
)

// Store holds the current catalog snapshot. Snapshots are immutable;
// the feed layer swaps in a whole new one, so readers never observe a
// half-updated catalog.
type Store struct {
	current atomic.Pointer[models.Catalog]
}

// NewStore returns a store primed with an empty snapshot.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&models.Catalog{})
	return s
}

// Snapshot returns the current catalog. Callers must treat it as
// read-only and hold on to the same snapshot for the whole computation.
func (s *Store) Snapshot() *models.Catalog {
	return s.current.Load()
}

// Replace atomically swaps in a new snapshot.
func (s *Store) Replace(c *models.Catalog) {
	if c == nil {
		c = &models.Catalog{}
	}
	s.current.Store(c)
}
