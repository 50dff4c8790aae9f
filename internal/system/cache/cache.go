/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides an in-memory LRU cache with per entry expiry.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/asgardeo/beacon/internal/system/config"
	"github.com/asgardeo/beacon/internal/system/log"
)

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T)
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey)
	Clear()
	IsEnabled() bool
	GetStats() CacheStat
	CleanupExpired()
}

type lruEntry[T any] struct {
	*CacheEntry[T]
	key         CacheKey
	listElement *list.Element
}

// Cache is an in-memory least recently used cache.
type Cache[T any] struct {
	enabled     bool
	name        string
	size        int
	ttl         time.Duration
	entries     map[CacheKey]*lruEntry[T]
	accessOrder *list.List
	mu          sync.Mutex
	hitCount    int64
	missCount   int64
	evictCount  int64
	timeNow     func() time.Time
}

// NewCache creates a cache with the given name from the cache configuration.
func NewCache[T any](name string, cacheConfig config.CacheConfig) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", name))

	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning empty")
		return &Cache[T]{name: name, enabled: false}
	}

	logger.Debug("Initializing the cache", log.Int("size", cacheConfig.Size), log.Int("ttl", cacheConfig.TTL))
	return &Cache[T]{
		enabled:     true,
		name:        name,
		size:        cacheConfig.Size,
		ttl:         time.Duration(cacheConfig.TTL) * time.Second,
		entries:     make(map[CacheKey]*lruEntry[T]),
		accessOrder: list.New(),
		timeNow:     time.Now,
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.name
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// Set adds or updates an entry in the cache, evicting the least recently used entry when full.
func (c *Cache[T]) Set(key CacheKey, value T) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiryTime := c.timeNow().Add(c.ttl)
	if existing, exists := c.entries[key]; exists {
		existing.Value = value
		existing.ExpiryTime = expiryTime
		c.accessOrder.MoveToFront(existing.listElement)
		return
	}

	c.entries[key] = &lruEntry[T]{
		CacheEntry:  &CacheEntry[T]{Value: value, ExpiryTime: expiryTime},
		key:         key,
		listElement: c.accessOrder.PushFront(key),
	}

	if c.size > 0 && len(c.entries) > c.size {
		c.evictOldest()
	}
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		c.missCount++
		return zero, false
	}

	if c.timeNow().After(entry.ExpiryTime) {
		c.deleteEntry(entry)
		c.missCount++
		return zero, false
	}

	c.accessOrder.MoveToFront(entry.listElement)
	c.hitCount++
	return entry.Value, true
}

// Delete removes an entry from the cache.
func (c *Cache[T]) Delete(key CacheKey) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.entries[key]; exists {
		c.deleteEntry(entry)
	}
}

// Clear removes all entries from the cache and resets its statistics.
func (c *Cache[T]) Clear() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[CacheKey]*lruEntry[T])
	c.accessOrder.Init()
	c.hitCount = 0
	c.missCount = 0
	c.evictCount = 0
}

// GetStats returns the statistics of the cache.
func (c *Cache[T]) GetStats() CacheStat {
	if !c.enabled {
		return CacheStat{Enabled: false}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStat{
		Enabled:    true,
		Size:       len(c.entries),
		MaxSize:    c.size,
		HitCount:   c.hitCount,
		MissCount:  c.missCount,
		EvictCount: c.evictCount,
	}
}

// CleanupExpired removes all expired entries from the cache.
func (c *Cache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timeNow()
	for _, entry := range c.entries {
		if now.After(entry.ExpiryTime) {
			c.deleteEntry(entry)
		}
	}
}

// evictOldest removes the least recently used entry. Callers hold the lock.
func (c *Cache[T]) evictOldest() {
	element := c.accessOrder.Back()
	if element == nil {
		return
	}
	key := element.Value.(CacheKey)
	if entry, exists := c.entries[key]; exists {
		c.deleteEntry(entry)
		c.evictCount++
	}
}

// deleteEntry removes an entry from both the map and the access order. Callers hold the lock.
func (c *Cache[T]) deleteEntry(entry *lruEntry[T]) {
	c.accessOrder.Remove(entry.listElement)
	delete(c.entries, entry.key)
}
