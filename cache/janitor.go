package cache

import (
	"context"
	"time"

	"github.com/jonwraymond/transcache/observe"
)

// SweepInterval is how often the background sweep removes expired
// entries. The interval is fixed; the cache otherwise relies on lazy
// expiry during Get.
const SweepInterval = 5 * time.Minute

// runJanitor drives the periodic sweep until Stop.
func (c *Cache) runJanitor() {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.sweep(time.Now())
		case <-c.stopCh:
			return
		}
	}
}

// sweep removes every entry expired at now and counts the removals as
// evictions. Expired entries are collected under the read lock so the
// scan never blocks readers; the deletes re-check under the write lock.
func (c *Cache) sweep(now time.Time) int {
	type expired struct {
		id string
		e  *entry
	}

	c.mu.RLock()
	var candidates []expired
	for id, e := range c.entries {
		if !now.Before(e.expiresAt) {
			candidates = append(candidates, expired{id, e})
		}
	}
	c.mu.RUnlock()

	if len(candidates) == 0 {
		return 0
	}

	var removedBytes int64
	removed := 0
	c.mu.Lock()
	for _, cand := range candidates {
		// A concurrent Put may have replaced the entry; only remove the
		// exact expired one.
		if cur, ok := c.entries[cand.id]; ok && cur == cand.e {
			removedBytes += cand.e.size()
			delete(c.entries, cand.id)
			removed++
		}
	}
	c.mu.Unlock()
	c.approxBytes.Add(-removedBytes)

	if removed > 0 {
		ctx := context.Background()
		c.stats.evictions.Add(uint64(removed))
		c.met().RecordEvictions(ctx, int64(removed), "sweep")
		c.log().Debug(ctx, "expired entries swept",
			observe.Field{Key: "removed", Value: removed},
		)
	}
	return removed
}
