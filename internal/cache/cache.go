// Package cache provides the in-memory view cache behind the pipeline's
// cache-invalidation signal. Mutations call Invalidate with a path; read
// handlers serve previously rendered responses from the store until the
// entry expires or is invalidated.
//
// The store is process-local by design: this backend runs as a single
// instance, and the contract the mutation pipeline depends on is only
// "mark the view stale", which Invalidate satisfies synchronously.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Invalidator marks a cached view path (and everything nested under it) as
// stale. It is idempotent and fire-and-forget from the caller's perspective.
type Invalidator interface {
	Invalidate(path string)
}

type entry struct {
	body      []byte
	expiresAt time.Time
}

// Store is a TTL-bounded view cache keyed by request path. The zero value is
// not usable; construct with New.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New returns a Store whose entries expire after ttl. A non-positive ttl
// disables expiry, leaving invalidation as the only eviction.
func New(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached body for path, if present and unexpired.
func (s *Store) Get(path string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.entries[path]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, path)
		s.mu.Unlock()
		return nil, false
	}
	return e.body, true
}

// Put stores body under path, replacing any previous entry.
func (s *Store) Put(path string, body []byte) {
	e := entry{body: body}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[path] = e
	s.mu.Unlock()
}

// Invalidate drops the entry for path and every entry nested under it: any
// key continuing with a path segment ("/...") or a query string ("?...").
// Invalidating a path that was never cached is a no-op.
func (s *Store) Invalidate(path string) {
	base := strings.TrimSuffix(path, "/")
	s.mu.Lock()
	for key := range s.entries {
		if key == path || key == base ||
			strings.HasPrefix(key, base+"/") || strings.HasPrefix(key, base+"?") {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// Len reports the number of live entries, expired or not. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
