package cache

import (
	"sync"
	"time"
)

// Cache is a small in-process TTL cache. The language middleware keeps
// profile language lookups here so every request does not hit the database.
type Cache struct {
	mu   sync.RWMutex
	data map[string]cacheItem
	ttl  time.Duration
}

type cacheItem struct {
	value    []byte
	cachedAt time.Time
	ttl      time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		data: make(map[string]cacheItem),
		ttl:  ttl,
	}
}

func (c *Cache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheItem{
		value:    value,
		cachedAt: time.Now(),
	}
}

func (c *Cache) SetWithTTL(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheItem{
		value:    value,
		cachedAt: time.Now(),
		ttl:      ttl,
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	item, exists := c.data[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	ttl := item.ttl
	if ttl <= 0 {
		ttl = c.ttl
	}
	if time.Since(item.cachedAt) > ttl {
		c.Delete(key)
		return nil, false
	}

	return item.value, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]cacheItem)
}
