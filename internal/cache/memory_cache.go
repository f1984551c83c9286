package cache

import (
	"sync"
	"time"
)

// MemoryCache provides an in-memory L1 cache for quotes so a price refresh
// over many holdings of the same symbol hits the database once
type MemoryCache struct {
	quotes   map[string]quoteEntry
	mu       sync.RWMutex
	quoteTTL time.Duration
}

type quoteEntry struct {
	price     float64
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(quoteTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		quotes:   make(map[string]quoteEntry),
		quoteTTL: quoteTTL,
	}
}

// GetQuote retrieves a cached price if fresh
func (c *MemoryCache) GetQuote(symbol string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.quotes[symbol]
	if !exists {
		return 0, false
	}
	if time.Since(entry.fetchedAt) > c.quoteTTL {
		return 0, false
	}
	return entry.price, true
}

// SetQuote caches a price
func (c *MemoryCache) SetQuote(symbol string, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quotes[symbol] = quoteEntry{
		price:     price,
		fetchedAt: time.Now(),
	}
}

// InvalidateQuote removes a symbol from the cache
func (c *MemoryCache) InvalidateQuote(symbol string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.quotes, symbol)
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quotes = make(map[string]quoteEntry)
}
