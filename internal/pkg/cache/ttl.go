// Package cache provides a small in-process TTL cache.
//
// Instances are created and owned by the DI root and handed to the components that need them,
// so every cached value has an explicit lifetime and an explicit way to drop it.
package cache

import (
	"sync"
	"time"

	"gym-reservation-engine/internal/pkg/clock"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTL[K comparable, V any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	clock clock.Clock
	items map[K]entry[V]
}

// NewTTL builds a cache whose entries live for ttl. A non-positive ttl disables caching.
func NewTTL[K comparable, V any](ttl time.Duration, clk clock.Clock) *TTL[K, V] {
	return &TTL[K, V]{
		ttl:   ttl,
		clock: clk,
		items: make(map[K]entry[V]),
	}
}

func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if !c.clock.Now().Before(e.expiresAt) {
		c.mu.Lock()
		// re-check: another goroutine may have refreshed it
		if cur, still := c.items[key]; still && !c.clock.Now().Before(cur.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (c *TTL[K, V]) Set(key K, value V) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
}

func (c *TTL[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *TTL[K, V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]entry[V])
}

func (c *TTL[K, V]) TTL() time.Duration {
	return c.ttl
}
