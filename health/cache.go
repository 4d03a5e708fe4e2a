package health

import (
	"context"
	"fmt"

	"github.com/jonwraymond/transcache/cache"
)

// CacheCheckerConfig configures the cache probe.
type CacheCheckerConfig struct {
	// MemoryBudget is the approximate byte size above which the probe
	// reports degraded. Zero disables the budget.
	MemoryBudget int64
}

// CacheChecker probes a translation cache for availability and reports
// its current usage counters as probe details.
type CacheChecker struct {
	cache  *cache.Cache
	config CacheCheckerConfig
}

// NewCacheChecker creates a probe for c.
func NewCacheChecker(c *cache.Cache, config ...CacheCheckerConfig) *CacheChecker {
	cfg := CacheCheckerConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	return &CacheChecker{cache: c, config: cfg}
}

// Name returns the probe name.
func (c *CacheChecker) Name() string { return "cache" }

// Check reports unhealthy when the cache is stopped or was never
// started, degraded when the memory budget is exceeded, healthy
// otherwise. Details always include the stats snapshot.
func (c *CacheChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	if err := c.cache.Ready(); err != nil {
		return Unhealthy("cache unavailable", err)
	}

	report := c.cache.Stats()
	details := map[string]any{
		"size":      report.Size,
		"memory":    report.Memory,
		"hits":      report.Hits,
		"misses":    report.Misses,
		"evictions": report.Evictions,
		"hit_rate":  report.HitRate,
	}

	if c.config.MemoryBudget > 0 && report.Memory > c.config.MemoryBudget {
		return Degraded(fmt.Sprintf("cache over memory budget: %d > %d bytes",
			report.Memory, c.config.MemoryBudget)).WithDetails(details)
	}

	return Healthy(fmt.Sprintf("cache serving %d entries", report.Size)).WithDetails(details)
}
