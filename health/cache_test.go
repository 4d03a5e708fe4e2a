package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonwraymond/transcache/cache"
	"github.com/jonwraymond/transcache/key"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(cache.Config{})
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	t.Cleanup(c.Stop)
	return c
}

func TestCacheChecker_Healthy(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	k := key.Tuple{key.Tag, "Catalog.Product", "name", "en", "1"}
	if err := c.Put(ctx, k, "Desk", time.Hour); err != nil {
		t.Fatalf("Put: %v", err)
	}
	c.Get(ctx, k)

	r := NewCacheChecker(c).Check(ctx)
	if r.Status != StatusHealthy {
		t.Fatalf("Status = %v, want healthy: %s", r.Status, r.Message)
	}
	if r.Details["size"] != 1 {
		t.Errorf("size detail = %v, want 1", r.Details["size"])
	}
	if r.Details["hits"] != uint64(1) {
		t.Errorf("hits detail = %v, want 1", r.Details["hits"])
	}
}

func TestCacheChecker_StoppedCacheIsUnhealthy(t *testing.T) {
	c, err := cache.New(cache.Config{})
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	c.Stop()

	r := NewCacheChecker(c).Check(context.Background())
	if r.Status != StatusUnhealthy {
		t.Fatalf("Status = %v, want unhealthy", r.Status)
	}
	if !errors.Is(r.Error, cache.ErrCacheUnavailable) {
		t.Errorf("Error = %v, want ErrCacheUnavailable", r.Error)
	}
}

func TestCacheChecker_MemoryBudget(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_ = c.Put(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "en", "1"}, "Desk", time.Hour)

	// Any populated cache exceeds a one-byte budget.
	r := NewCacheChecker(c, CacheCheckerConfig{MemoryBudget: 1}).Check(ctx)
	if r.Status != StatusDegraded {
		t.Fatalf("Status = %v, want degraded: %s", r.Status, r.Message)
	}
}

func TestCacheChecker_CancelledContext(t *testing.T) {
	c := newTestCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewCacheChecker(c).Check(ctx)
	if r.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", r.Status)
	}
}
