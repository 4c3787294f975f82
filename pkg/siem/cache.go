package siem

import (
	"sync"
	"time"

	"github.com/secopshq/caseflow/pkg/models"
)

// cacheEntry holds a cached result with a timestamp for TTL expiration.
type cacheEntry struct {
	result    models.SIEMResult
	fetchedAt time.Time
}

// Cache is a thread-safe in-memory result cache keyed by query hash.
// Expired entries are cleaned up lazily on Get() — no background goroutine.
// Writes are idempotent per hash; last writer wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewCache creates a cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get returns a cached result if present and not expired.
func (c *Cache) Get(hash string) (models.SIEMResult, bool) {
	c.mu.RLock()
	entry, ok := c.entries[hash]
	c.mu.RUnlock()

	if !ok {
		return models.SIEMResult{}, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired — clean up lazily. Re-check under write lock: a
		// concurrent Set() may have stored a fresh entry in between.
		c.mu.Lock()
		if current, ok := c.entries[hash]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, hash)
		}
		c.mu.Unlock()
		return models.SIEMResult{}, false
	}

	return entry.result, true
}

// Set stores a result with the current timestamp. Failed results must not
// be cached; that policy lives in the executor.
func (c *Cache) Set(hash string, result models.SIEMResult) {
	c.mu.Lock()
	c.entries[hash] = &cacheEntry{
		result:    result,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
