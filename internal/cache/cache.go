// Package cache provides a process-local lookaside cache with sliding
// TTL expiration. It is intentionally simple: keys live until their TTL
// lapses without a read, and there is no size-based eviction. The
// working set here is small (a handful of entity lists and items), so
// unbounded keys are acceptable.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	ttl       time.Duration
	expiresAt time.Time
}

// Cache is a lookaside cache shared by the repositories. It is an
// explicit dependency: construct one in main and inject it, never reach
// for package-level state.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	defaultTTL time.Duration

	now func() time.Time // overridable in tests
}

// New creates a Cache with the given default TTL.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the cached value for key if present and unexpired. A hit
// renews the entry's lifetime (sliding expiration).
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	now := c.now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}

	e.expiresAt = now.Add(e.ttl)
	c.entries[key] = e

	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL stores value under key with an explicit TTL.
func (c *Cache) SetTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		ttl:       ttl,
		expiresAt: c.now().Add(ttl),
	}
}

// Invalidate removes a single entry.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// InvalidatePrefix removes every entry whose key starts with prefix.
// Used to drop a logical collection (item keys plus list keys) after a
// write.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of live entries, expired or not. Intended for
// tests and diagnostics.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
