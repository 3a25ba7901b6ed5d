package engine

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// DefaultCacheTTL controls how long query results stay cached.
var DefaultCacheTTL = 24 * time.Hour

// Cache metrics — atomic counters shared across sessions.
var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

// ResponseCache maps a query key to a previously fetched text result with a
// TTL. Expired entries are treated as absent and removed lazily on access;
// there is no background purge. A cache belongs to exactly one session and
// is mutated only from that session's control flow, so it carries no lock.
type ResponseCache struct {
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	data     string
	storedAt time.Time
}

// NewResponseCache creates an empty cache with the given TTL.
// ttl <= 0 falls back to DefaultCacheTTL.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResponseCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// CacheKey builds a deterministic cache key from parts.
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("cg:%x", hash[:12]) // 24-char hex prefix
}

// Get returns the cached text for key, or false if the key is unseen or its
// entry has outlived the TTL.
func (c *ResponseCache) Get(key string) (string, bool) {
	entry, ok := c.entries[key]
	if !ok {
		cacheMisses.Add(1)
		return "", false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		cacheMisses.Add(1)
		return "", false
	}
	cacheHits.Add(1)
	return entry.data, true
}

// Put stores data under key, stamping it with the current time.
func (c *ResponseCache) Put(key, data string) {
	c.entries[key] = cacheEntry{data: data, storedAt: c.now()}
}

// Len reports the number of stored entries, expired ones included.
func (c *ResponseCache) Len() int {
	return len(c.entries)
}

// CacheStats returns current cache hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}
