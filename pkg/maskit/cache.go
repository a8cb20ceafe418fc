package maskit

import (
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Cache is a thread-safe in-memory cache with TTL expiration.
// Expired entries are removed lazily on Get.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry[V]
	ttl     time.Duration
}

// NewCache creates a new cache with the given TTL.
func NewCache[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]*cacheEntry[V]),
		ttl:     ttl,
	}
}

// Get returns the cached value if present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Re-check under the write lock: a concurrent Set may have stored a
		// fresh entry in the meantime.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}

	return entry.value, true
}

// Set stores value with the current timestamp.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry[V]{
		value:     value,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}

// Invalidate drops key.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
