package handler

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Idempotency cache defaults
const (
	DefaultIdempotencyCacheSize = 1024
	DefaultIdempotencyTTL       = 10 * time.Minute
	MaxIdempotencyKeyLength     = 128
)

// cachedResponse is a finished response kept for replay
type cachedResponse struct {
	Status   int
	Body     []byte
	CachedAt time.Time
}

// IdempotencyCache replays the first successful response for a client supplied key.
// Requests sharing a key are serialized so a retried spin can never debit twice.
type IdempotencyCache struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, cachedResponse]
}

// NewIdempotencyCache creates a cache holding at most size responses for ttl
func NewIdempotencyCache(size int, ttl time.Duration) *IdempotencyCache {
	if size <= 0 {
		size = DefaultIdempotencyCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyCache{
		lru: expirable.NewLRU[string, cachedResponse](size, nil, ttl),
	}
}

// Do returns the cached response for key, or runs fn and caches its result when
// the status is 2xx. replayed reports whether the response came from the cache.
func (c *IdempotencyCache) Do(key string, fn func() (int, []byte)) (status int, body []byte, replayed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, found := c.lru.Get(key); found {
		return entry.Status, entry.Body, true
	}

	status, body = fn()
	if status >= 200 && status < 300 {
		c.lru.Add(key, cachedResponse{Status: status, Body: body, CachedAt: time.Now()})
	}
	return status, body, false
}

// Len reports how many responses are cached
func (c *IdempotencyCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries from the cache
func (c *IdempotencyCache) Clear() {
	c.lru.Purge()
}
