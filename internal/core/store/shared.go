package store

import "sync"

// Shared guards a Store for concurrent callers. Each Read or Write callback
// runs while holding the lock, so a mutation is one atomic step and a query
// never sees a half-applied one.
type Shared struct {
	mu sync.RWMutex
	s  *Store
}

// NewShared wraps s; callers must stop using s directly afterwards.
func NewShared(s *Store) *Shared {
	return &Shared{s: s}
}

// Read runs fn under the read lock. fn must not mutate the store.
func (sh *Shared) Read(fn func(*Store) error) error {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return fn(sh.s)
}

// Write runs fn under the write lock.
func (sh *Shared) Write(fn func(*Store) error) error {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return fn(sh.s)
}
