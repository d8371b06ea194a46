// Package cache provides a small in-memory TTL cache, used to avoid
// reloading per-business contact lists on every request.
package cache

import (
	"sync"
	"time"
)

type item struct {
	data      interface{}
	expiresAt time.Time
}

// Cache is a concurrency-safe map with per-entry expiry.
type Cache struct {
	items map[string]item
	mutex sync.Mutex
}

// New creates a new cache instance
func New() *Cache {
	return &Cache{
		items: make(map[string]item),
	}
}

// Get retrieves an item from the cache. Expired entries are removed on
// access and reported as a miss.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	it, exists := c.items[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(it.expiresAt) {
		delete(c.items, key)
		return nil, false
	}

	return it.data, true
}

// Set stores an item in the cache with TTL
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = item{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes an item from the cache
func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = make(map[string]item)
}
