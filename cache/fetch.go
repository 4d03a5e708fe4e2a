package cache

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jonwraymond/transcache/key"
)

// ComputeFunc produces the value for a key from the authoritative
// source. It is assumed not to fail and to be pure for a given key.
type ComputeFunc func(ctx context.Context) string

// ComputeOptions configures GetOrCompute.
type ComputeOptions struct {
	// TTL for the computed value. Zero means the policy default.
	TTL time.Duration
}

// Fetch returns the cached value for t, computing and storing it on a
// miss. An optional ttl overrides the policy default. It is equivalent
// to GetOrCompute with a different option-passing style.
func (c *Cache) Fetch(ctx context.Context, t key.Tuple, compute ComputeFunc, ttl ...time.Duration) string {
	var opts ComputeOptions
	if len(ttl) > 0 {
		opts.TTL = ttl[0]
	}
	return c.GetOrCompute(ctx, t, compute, opts)
}

// GetOrCompute returns the cached value for t, computing and storing it
// on a miss. The value is returned directly; compute is assumed not to
// fail, and a rejected write (invalid key, unavailable cache) still
// returns the computed value.
//
// Concurrent callers racing on a missing key are not deduplicated: each
// may invoke compute and each will attempt the write, with the last
// write winning. compute must therefore be pure per key.
func (c *Cache) GetOrCompute(ctx context.Context, t key.Tuple, compute ComputeFunc, opts ComputeOptions) string {
	if value, ok := c.Get(ctx, t); ok {
		return value
	}

	// compute runs in the caller's execution context; a slow compute
	// delays only this caller.
	sctx, span := c.trace().StartSpan(ctx, "compute",
		attribute.String("cache.key", key.New(t).ID()),
	)
	value := compute(sctx)
	c.trace().EndSpan(span, nil)

	_ = c.Put(ctx, t, value, opts.TTL)
	return value
}
