package memcache

import (
	"sync"
	"time"
)

type legKey struct {
	From string
	To   string
}

type legEntry struct {
	minutes   float64
	expiresAt time.Time
}

// TravelTimeCache memoizes estimated travel minutes between place pairs so
// that a planning pass does not recompute the same leg repeatedly.
type TravelTimeCache struct {
	mu    sync.RWMutex
	store map[legKey]legEntry
}

func NewTravelTimeCache() *TravelTimeCache {
	return &TravelTimeCache{store: make(map[legKey]legEntry)}
}

func (c *TravelTimeCache) Get(from, to string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[legKey{From: from, To: to}]
	if !ok || time.Now().After(e.expiresAt) {
		return 0, false
	}
	return e.minutes, true
}

func (c *TravelTimeCache) Set(from, to string, minutes float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[legKey{From: from, To: to}] = legEntry{
		minutes:   minutes,
		expiresAt: time.Now().Add(ttl),
	}
}
