//go:build unit

package cache_test

import (
	"testing"
	"time"

	"gym-reservation-engine/internal/pkg/cache"
	"gym-reservation-engine/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestTTL(t *testing.T) {
	base := time.Date(2025, 1, 27, 9, 0, 0, 0, time.UTC)

	t.Run("returns value before expiry", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		c := cache.NewTTL[string, int](time.Minute, clk)
		c.Set("levels", 42)

		clk.Add(59 * time.Second)
		v, ok := c.Get("levels")
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("expires at ttl boundary", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		c := cache.NewTTL[string, int](time.Minute, clk)
		c.Set("levels", 42)

		clk.Add(time.Minute)
		_, ok := c.Get("levels")
		assert.False(t, ok)
	})

	t.Run("invalidate drops single key", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		c := cache.NewTTL[string, int](time.Minute, clk)
		c.Set("a", 1)
		c.Set("b", 2)

		c.Invalidate("a")
		_, okA := c.Get("a")
		_, okB := c.Get("b")
		assert.False(t, okA)
		assert.True(t, okB)

		c.InvalidateAll()
		_, okB = c.Get("b")
		assert.False(t, okB)
	})

	t.Run("zero ttl disables caching", func(t *testing.T) {
		c := cache.NewTTL[string, int](0, clock.NewMockClock(base))
		c.Set("a", 1)
		_, ok := c.Get("a")
		assert.False(t, ok)
	})
}
