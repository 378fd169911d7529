// Package cache provides a small in-process TTL cache. It is the only
// state shared across concurrent requests; writes are last-writer-wins
// and the benign race of two requests filling the same key is
// acceptable because both store equivalent data.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTL is a time-boxed map. Construct once per process and inject into
// whatever needs it; the zero value is not usable.
type TTL[V any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]entry[V]
}

// New creates a TTL cache with the given entry lifetime.
func New[V any](ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry[V]),
	}
}

// Get returns the value for key if present and not expired.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key with the current timestamp.
func (c *TTL[V]) Put(key string, value V) {
	c.mu.Lock()
	c.items[key] = entry[V]{value: value, storedAt: c.now()}
	c.mu.Unlock()
}

// Len reports the number of entries, expired ones included.
func (c *TTL[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Purge drops every expired entry.
func (c *TTL[V]) Purge() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.items {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.items, k)
		}
	}
	c.mu.Unlock()
}

// SetClock replaces the time source. Test hook.
func (c *TTL[V]) SetClock(now func() time.Time) { c.now = now }
