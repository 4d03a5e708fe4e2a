package cache

import (
	"math"
	"sync/atomic"
)

// stats holds the process-wide lookup counters. They are independent of
// entry lifecycle: Clear empties the store but never resets them.
type stats struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Report is a point-in-time snapshot of cache usage.
type Report struct {
	Size      int     `json:"size"`
	Memory    int64   `json:"memory"`
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	Evictions uint64  `json:"evictions"`
	HitRate   float64 `json:"hit_rate"`
}

// Stats returns current counters, entry count, approximate memory in
// bytes, and the hit rate as a percentage rounded to two decimals (0.0
// when there have been no accesses).
func (c *Cache) Stats() Report {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()

	hits := c.stats.hits.Load()
	misses := c.stats.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = math.Round(float64(hits)/float64(total)*100*100) / 100
	}

	return Report{
		Size:      size,
		Memory:    c.approxBytes.Load(),
		Hits:      hits,
		Misses:    misses,
		Evictions: c.stats.evictions.Load(),
		HitRate:   hitRate,
	}
}
