package fuzzy

import (
	"container/list"
	"sync"
)

// cache is an LRU map from query string to ranked matches. Entries store
// the full (unclipped) match list so any limit can be served from one
// entry.
type cache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	order   *list.List
}

type cacheEntry struct {
	query   string
	matches []Match
}

func newCache(maxSize int) *cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &cache{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

func (c *cache) get(query string) ([]Match, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)

	entry := elem.Value.(*cacheEntry)
	out := make([]Match, len(entry.matches))
	copy(out, entry.matches)
	return out, true
}

func (c *cache) put(query string, matches []Match) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[query]; ok {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		entry.matches = copyMatches(matches)
		return
	}

	if c.order.Len() >= c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).query)
		}
	}

	c.entries[query] = c.order.PushFront(&cacheEntry{
		query:   query,
		matches: copyMatches(matches),
	})
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

func copyMatches(matches []Match) []Match {
	out := make([]Match, len(matches))
	copy(out, matches)
	return out
}
