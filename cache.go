package okpicker

import (
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheCapacity bounds the round-trip cache. A session rarely
// touches more than a handful of distinct quantized colors, so a small
// bound keeps the store trivial while never evicting anything the user
// still cares about.
const DefaultCacheCapacity = 128

// RoundTripCache remembers the last full-precision Oklch value committed
// for each exact quantized display color. Quantization is many-to-one: at
// full white or black the chroma collapses and the hue is erased from the
// 8-bit encoding, yet a user who reopens the picker expects the old hue
// back. Get recovers it; a miss means the caller falls back to direct
// (lossy) conversion.
//
// Values are stored by copy, so later mutation of a working color never
// changes an entry retroactively. Eviction is least-recently-set; setting
// an existing key refreshes its recency, so the entry about to be
// overwritten is never the one evicted.
type RoundTripCache struct {
	lru *lru.Cache
}

// NewRoundTripCache creates a cache bounded to capacity entries.
// A capacity of zero or less selects DefaultCacheCapacity.
func NewRoundTripCache(capacity int) *RoundTripCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c, err := lru.New(capacity)
	if err != nil {
		// lru.New only fails for non-positive sizes, which the guard
		// above rules out.
		panic(err)
	}
	return &RoundTripCache{lru: c}
}

// Get returns the perceptual color last stored for key, if any.
func (c *RoundTripCache) Get(key DisplayRGBA) (Oklch, bool) {
	v, ok := c.lru.Get(key.Key())
	if !ok {
		return Oklch{}, false
	}
	return v.(Oklch), true
}

// Set stores value as the perceptual color for key, replacing any previous
// entry. Most-recently-set wins.
func (c *RoundTripCache) Set(key DisplayRGBA, value Oklch) {
	c.lru.Add(key.Key(), value)
}

// Len returns the number of entries currently stored.
func (c *RoundTripCache) Len() int {
	return c.lru.Len()
}
