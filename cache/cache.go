// Package cache provides a minimal in-memory cache with per-cache TTL.
//
// The cache is generic over its value type and safe for concurrent use.
// A zero or negative TTL disables caching entirely, which lets callers
// wire a cache unconditionally and turn it off through configuration.
package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a concurrency-safe in-memory cache. Expired entries are
// removed lazily on access.
type Cache[V any] struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]entry[V]

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats carries cache hit and miss counters.
type Stats struct {
	Hits   int64
	Misses int64
}

// New creates a cache whose entries expire after ttl. A non-positive
// ttl disables the cache.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
	}
}

// Enabled reports whether the cache stores anything at all.
func (c *Cache[V]) Enabled() bool {
	return c.ttl > 0
}

// Get returns the cached value for key. The second return value is
// false when the key is absent or expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	if !c.Enabled() {
		c.misses.Add(1)
		return zero, false
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// replaced the entry since the read.
		if cur, ok := c.entries[key]; ok && time.Now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		c.misses.Add(1)
		return zero, false
	}

	c.hits.Add(1)
	return e.value, true
}

// Set stores value under key. A no-op when the cache is disabled.
func (c *Cache[V]) Set(key string, value V) {
	if !c.Enabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Delete removes key. Deleting an absent key is a no-op.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Flush removes all entries.
func (c *Cache[V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Len returns the number of stored entries, including any that have
// expired but not yet been evicted.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
