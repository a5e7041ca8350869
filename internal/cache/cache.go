// Package cache implements the rendered-page cache used by the site.
// Documents are kept in memory and evicted least recently used first.
package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache stores rendered documents keyed by request path.
// It is safe for concurrent use.
type Cache struct {
	lru *lru.Cache[string, []byte]

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// Stats tracks cache performance metrics
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
}

// Config holds cache configuration
type Config struct {
	MaxEntries int // entries kept before eviction; <= 0 disables the cache
}

// DefaultConfig returns the default cache configuration
func DefaultConfig() Config {
	return Config{MaxEntries: 64}
}

// New creates a cache. A disabled cache stores nothing and always misses.
func New(config Config) *Cache {
	c := &Cache{}
	if config.MaxEntries > 0 {
		// lru.New only fails for a non-positive size
		c.lru, _ = lru.New[string, []byte](config.MaxEntries)
	}
	return c
}

// Enabled reports whether the cache stores anything
func (c *Cache) Enabled() bool {
	return c != nil && c.lru != nil
}

// Get retrieves a cached document
func (c *Cache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	if c.lru == nil {
		c.misses.Add(1)
		return nil, false
	}

	data, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return data, true
}

// Put stores a copy of data, evicting the least recently used entry when full
func (c *Cache) Put(key string, data []byte) {
	if !c.Enabled() {
		return
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	if evicted := c.lru.Add(key, stored); evicted {
		c.evictions.Add(1)
	}
}

// Invalidate removes a single entry and reports whether it was present
func (c *Cache) Invalidate(key string) bool {
	if !c.Enabled() {
		return false
	}
	return c.lru.Remove(key)
}

// Purge removes every entry. Counters are kept.
func (c *Cache) Purge() {
	if c.Enabled() {
		c.lru.Purge()
	}
}

// GetStats returns a snapshot of cache statistics
func (c *Cache) GetStats() Stats {
	if c == nil {
		return Stats{}
	}
	s := Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
	if c.lru != nil {
		s.Entries = c.lru.Len()
	}
	return s
}
