package textwidth

import "sync"

// Default generation bounds for the width cache.
const (
	DefaultMaxEntries    = 4096
	DefaultMaxOperations = 256
)

// Cache memoizes display-width computations keyed by the exact line text.
//
// The cache is generational rather than LRU: once it holds maxEntries
// entries, or once FinishOp has been called maxOperations times since the
// last reset, the whole map is dropped and rebuilt. A lost entry only costs
// a recomputation, so no per-entry bookkeeping is needed.
type Cache struct {
	mu            sync.Mutex
	entries       map[string]int
	ops           int
	maxEntries    int
	maxOperations int
}

// NewCache creates a cache with the given generation bounds.
// Non-positive bounds fall back to the package defaults.
func NewCache(maxEntries, maxOperations int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if maxOperations <= 0 {
		maxOperations = DefaultMaxOperations
	}
	return &Cache{
		entries:       make(map[string]int),
		maxEntries:    maxEntries,
		maxOperations: maxOperations,
	}
}

func (c *Cache) lookup(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	width, ok := c.entries[key]
	return width, ok
}

func (c *Cache) store(key string, width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Reset before inserting so the map never exceeds maxEntries and the
	// fresh entry survives the reset.
	if len(c.entries) >= c.maxEntries {
		c.resetLocked()
	}
	c.entries[key] = width
}

// FinishOp records the completion of one formatting operation. Every
// maxOperations calls the cache is cleared wholesale.
func (c *Cache) FinishOp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops++
	if c.ops >= c.maxOperations {
		c.resetLocked()
	}
}

// Reset drops every cached entry and restarts the operation counter.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Cache) resetLocked() {
	c.entries = make(map[string]int)
	c.ops = 0
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
