package cache

import (
	"context"
	"testing"
	"time"
)

func TestCache_HitRateArithmetic(t *testing.T) {
	c := newTestCache(t, Config{})
	ctx := context.Background()

	// 2 misses, then 1 put and 2 hits on that key: hit rate 50.0.
	_, _ = c.Get(ctx, productKey("1", "en"))
	_, _ = c.Get(ctx, productKey("1", "en"))
	_ = c.Put(ctx, productKey("1", "en"), "Widget", time.Minute)
	_, _ = c.Get(ctx, productKey("1", "en"))
	_, _ = c.Get(ctx, productKey("1", "en"))

	report := c.Stats()
	if report.Hits != 2 {
		t.Errorf("Hits = %d, want 2", report.Hits)
	}
	if report.Misses != 2 {
		t.Errorf("Misses = %d, want 2", report.Misses)
	}
	if report.HitRate != 50.0 {
		t.Errorf("HitRate = %v, want 50.0", report.HitRate)
	}
}

func TestCache_HitRateZeroAccesses(t *testing.T) {
	c := newTestCache(t, Config{})

	if got := c.Stats().HitRate; got != 0.0 {
		t.Errorf("HitRate with no accesses = %v, want 0.0", got)
	}
}

func TestCache_HitRateRounding(t *testing.T) {
	c := newTestCache(t, Config{})
	ctx := context.Background()

	// 1 hit, 2 misses: 33.333... rounds to 33.33.
	_, _ = c.Get(ctx, productKey("1", "en"))
	_, _ = c.Get(ctx, productKey("1", "en"))
	_ = c.Put(ctx, productKey("1", "en"), "Widget", time.Minute)
	_, _ = c.Get(ctx, productKey("1", "en"))

	if got := c.Stats().HitRate; got != 33.33 {
		t.Errorf("HitRate = %v, want 33.33", got)
	}
}

func TestCache_ReportReflectsSize(t *testing.T) {
	c := newTestCache(t, Config{})
	ctx := context.Background()

	_ = c.Put(ctx, productKey("1", "en"), "Widget", time.Minute)
	_ = c.Put(ctx, productKey("2", "en"), "Gadget", time.Minute)

	report := c.Stats()
	if report.Size != 2 {
		t.Errorf("Size = %d, want 2", report.Size)
	}
	if report.Memory <= 0 {
		t.Errorf("Memory = %d, want > 0", report.Memory)
	}
}
