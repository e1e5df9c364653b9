package tui

import (
	"fmt"
	"sync"
)

// Cache keeps rendered thumbnails keyed by source URL and cell size. The
// oldest entry is evicted once maxEntries is reached.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	rendered   map[string]string
	order      []string
}

func NewCache(maxEntries int) *Cache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Cache{
		maxEntries: maxEntries,
		rendered:   make(map[string]string),
	}
}

func cacheKey(source string, width, height int) string {
	return fmt.Sprintf("%s@%dx%d", source, width, height)
}

func (c *Cache) Get(source string, width, height int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.rendered[cacheKey(source, width, height)]
	return s, ok
}

func (c *Cache) Set(source string, width, height int, rendered string) {
	if rendered == "" {
		return
	}
	key := cacheKey(source, width, height)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.rendered[key]; !exists {
		if len(c.order) >= c.maxEntries {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.rendered, oldest)
		}
		c.order = append(c.order, key)
	}
	c.rendered[key] = rendered
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rendered)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rendered = make(map[string]string)
	c.order = nil
}
