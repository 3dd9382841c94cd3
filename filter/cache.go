package filter

import (
	"container/list"
	"sync"
)

// lruCache is a thread-safe LRU cache of compiled filters
type lruCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	mu        sync.RWMutex
}

// entry is stored in the cache
type entry struct {
	key    string
	filter *RowFilter
}

// newLRUCache creates a new LRU cache with the given size
func newLRUCache(size int) *lruCache {
	return &lruCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get retrieves a compiled filter from the cache
func (c *lruCache) Get(key string) (*RowFilter, bool) {
	c.mu.RLock()
	node, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	// Move to front (most recently used)
	c.mu.Lock()
	c.evictList.MoveToFront(node)
	c.mu.Unlock()

	return node.Value.(*entry).filter, true
}

// Put adds or updates a compiled filter in the cache
func (c *lruCache) Put(key string, filter *RowFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, exists := c.items[key]; exists {
		c.evictList.MoveToFront(node)
		node.Value.(*entry).filter = filter
		return
	}

	ent := &entry{key: key, filter: filter}
	node := c.evictList.PushFront(ent)
	c.items[key] = node

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// removeOldest removes the least recently used item
func (c *lruCache) removeOldest() {
	node := c.evictList.Back()
	if node != nil {
		c.evictList.Remove(node)
		kv := node.Value.(*entry)
		delete(c.items, kv.key)
	}
}

// Size returns the number of items in the cache
func (c *lruCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.evictList.Len()
}
