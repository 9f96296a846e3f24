package grammar

import (
	"hash/fnv"
	"sync"
)

// defaultCacheLimit bounds the memoization map. When the limit is reached the
// whole cache is reset, which is cheaper than LRU bookkeeping and fine for a
// cache that only exists to absorb repeated checks of identical text.
const defaultCacheLimit = 512

// Cache memoizes grammar results by content hash. Safe for concurrent use.
// Entries are never invalidated within the process lifetime except by the
// size-limit reset.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64][]Error
	limit   int
}

// NewCache returns a Cache bounded at limit entries; limit <= 0 uses the
// default.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = defaultCacheLimit
	}
	return &Cache{
		entries: make(map[uint64][]Error),
		limit:   limit,
	}
}

// Get returns the memoized result for text, if any.
func (c *Cache) Get(text string) ([]Error, bool) {
	key := hashText(text)
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.entries[key]
	return result, ok
}

// Put memoizes a result, resetting the cache first when it is full.
func (c *Cache) Put(text string, result []Error) {
	key := hashText(text)
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.limit {
		c.entries = make(map[uint64][]Error)
	}
	c.entries[key] = result
}

// Len returns the current number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func hashText(text string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	return h.Sum64()
}
