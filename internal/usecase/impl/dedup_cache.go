package impl

import "sync"

// dedupCache remembers the most recent keys up to a fixed capacity, evicting the oldest first.
type dedupCache struct {
	mu       sync.Mutex
	capacity int
	keys     map[string]struct{}
	order    []string
}

func newDedupCache(capacity int) *dedupCache {
	return &dedupCache{
		capacity: max(capacity, 1),
		keys:     make(map[string]struct{}, capacity),
		order:    make([]string, 0, capacity),
	}
}

// Add records key and reports false when it was already present.
func (c *dedupCache) Add(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.keys[key]; ok {
		return false
	}

	if len(c.order) == c.capacity {
		delete(c.keys, c.order[0])
		c.order = c.order[1:]
	}
	c.keys[key] = struct{}{}
	c.order = append(c.order, key)

	return true
}

// Forget removes key so a later Add succeeds again.
func (c *dedupCache) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.keys[key]; !ok {
		return
	}
	delete(c.keys, key)
	for idx, existing := range c.order {
		if existing == key {
			c.order = append(c.order[:idx], c.order[idx+1:]...)

			break
		}
	}
}
