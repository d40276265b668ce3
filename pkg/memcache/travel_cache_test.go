package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTravelTimeCacheRoundTrip(t *testing.T) {
	cache := NewTravelTimeCache()

	_, ok := cache.Get("a", "b")
	assert.False(t, ok)

	cache.Set("a", "b", 12.5, time.Hour)
	got, ok := cache.Get("a", "b")
	assert.True(t, ok)
	assert.Equal(t, 12.5, got)

	// Directional: the reverse leg is a separate entry.
	_, ok = cache.Get("b", "a")
	assert.False(t, ok)
}

func TestTravelTimeCacheExpiry(t *testing.T) {
	cache := NewTravelTimeCache()
	cache.Set("a", "b", 5, -time.Second)

	_, ok := cache.Get("a", "b")
	assert.False(t, ok)
}
