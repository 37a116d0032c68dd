package catalog

import (
	"errors"
	"sync/atomic"
)

// ErrNotLoaded is returned when no catalog snapshot has been published yet.
var ErrNotLoaded = errors.New("catalog not loaded")

// Snapshot publishes the currently-visible Index. Refreshes build a complete
// new index and swap it in atomically; readers holding the previous index
// keep a consistent view until their search ends.
type Snapshot struct {
	current atomic.Pointer[Index]
}

// Publish replaces the visible index wholesale.
func (s *Snapshot) Publish(idx *Index) {
	s.current.Store(idx)
}

// Current returns the published index, or ErrNotLoaded before the first
// publish.
func (s *Snapshot) Current() (*Index, error) {
	idx := s.current.Load()
	if idx == nil {
		return nil, ErrNotLoaded
	}
	return idx, nil
}

// Loaded reports whether an index has been published.
func (s *Snapshot) Loaded() bool {
	return s.current.Load() != nil
}
