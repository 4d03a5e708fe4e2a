package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonwraymond/transcache/integrity"
	"github.com/jonwraymond/transcache/key"
	"github.com/jonwraymond/transcache/observe"
	"github.com/jonwraymond/transcache/secret"
)

// Config configures a Cache.
type Config struct {
	// Policy sets entry lifetimes. The zero value means DefaultPolicy.
	Policy Policy

	// Secret is the signing secret. When empty, SecretRef is resolved;
	// when that is also empty, a random per-process secret is generated
	// and entries will not verify across a restart.
	Secret []byte

	// SecretRef is a configuration reference for the signing secret,
	// resolved through Secrets (e.g. "secretref:env:SIGNING_SECRET" or
	// "base64:..." material).
	SecretRef string

	// Secrets resolves SecretRef. Nil means a strict resolver with the
	// env provider.
	Secrets *secret.Resolver

	// StrictKeys disables the backward-compatible passthrough of
	// non-canonical tuple keys.
	StrictKeys bool

	// Auditor receives every key-validation outcome.
	Auditor key.Auditor

	// Loader supplies entries for Warmup. Nil disables warmup.
	Loader Loader

	Logger  observe.Logger
	Metrics observe.Metrics
	Tracer  observe.Tracer
}

// entry is a stored value with its absolute expiry. Entries are owned
// exclusively by the Cache; their contents never escape a call.
type entry struct {
	key       key.Key
	value     integrity.SignedValue
	expiresAt time.Time
}

func (e *entry) size() int64 {
	return int64(len(e.key.ID()) + e.value.Size())
}

// Cache is the translation value cache: a concurrent map of validated
// key to signed value with absolute expiry. The zero value is an
// unavailable cache on which every operation degrades to a miss or
// no-op; use New to obtain a working one.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry

	approxBytes atomic.Int64
	stats       stats

	validator key.Validator
	guard     *integrity.Guard
	policy    Policy

	logger  observe.Logger
	metrics observe.Metrics
	tracer  observe.Tracer
	loader  Loader

	stopOnce sync.Once
	stopCh   chan struct{}
}

// New creates a started Cache and launches its background sweep.
func New(cfg Config) (*Cache, error) {
	signingSecret := cfg.Secret
	if len(signingSecret) == 0 && cfg.SecretRef != "" {
		resolver := cfg.Secrets
		if resolver == nil {
			resolver = secret.NewResolver(true, secret.EnvProvider{})
		}
		resolved, err := resolver.ResolveBytes(context.Background(), cfg.SecretRef)
		if err != nil {
			return nil, err
		}
		signingSecret = resolved
	}

	guard, err := integrity.New(signingSecret)
	if err != nil {
		return nil, err
	}

	policy := cfg.Policy
	if policy == (Policy{}) {
		policy = DefaultPolicy()
	}

	c := &Cache{
		entries:   make(map[string]*entry),
		validator: key.Validator{Strict: cfg.StrictKeys, Auditor: cfg.Auditor},
		guard:     guard,
		policy:    policy,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		tracer:    cfg.Tracer,
		loader:    cfg.Loader,
		stopCh:    make(chan struct{}),
	}
	if c.logger == nil {
		c.logger = observe.NopLogger{}
	}
	if c.metrics == nil {
		c.metrics = observe.NopMetrics{}
	}
	if c.tracer == nil {
		c.tracer = observe.NopTracer{}
	}

	go c.runJanitor()
	return c, nil
}

// Stop terminates the background sweep and makes the cache unavailable.
// Safe to call more than once.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
	c.approxBytes.Store(0)
}

// Ready reports whether the cache can serve entries.
func (c *Cache) Ready() error {
	c.mu.RLock()
	available := c.entries != nil
	c.mu.RUnlock()
	if !available {
		return ErrCacheUnavailable
	}
	return nil
}

// Put validates t, signs value, and stores it for ttl, overwriting any
// prior entry for the key. ttl <= 0 means the policy default. Validation
// and signing errors are returned and nothing is stored; an unavailable
// cache silently drops the write.
func (c *Cache) Put(ctx context.Context, t key.Tuple, value string, ttl time.Duration) error {
	k, err := c.validator.Validate(t)
	if err != nil {
		c.log().Debug(ctx, "cache write rejected", observe.Field{Key: "error", Value: err.Error()})
		return err
	}

	if c.guard == nil {
		// Zero-value cache: unavailable, the write degrades to a no-op.
		return nil
	}
	signed, err := c.guard.Sign(value)
	if err != nil {
		c.log().Error(ctx, "cache value signing failed", observe.Field{Key: "error", Value: err.Error()})
		return err
	}

	e := &entry{
		key:       k,
		value:     signed,
		expiresAt: time.Now().Add(c.policy.EffectiveTTL(ttl)),
	}
	id := k.ID()

	c.mu.Lock()
	if c.entries == nil {
		c.mu.Unlock()
		return nil
	}
	if old, ok := c.entries[id]; ok {
		c.approxBytes.Add(-old.size())
	}
	c.entries[id] = e
	c.mu.Unlock()
	c.approxBytes.Add(e.size())

	return nil
}

// Get validates t and returns the live, verified value for it. Every
// failure mode (invalid key, unavailable cache, absent or expired
// entry, tamper detection) converges to a miss; callers recompute from
// the authoritative source and never special-case cache errors.
func (c *Cache) Get(ctx context.Context, t key.Tuple) (string, bool) {
	start := time.Now()
	defer func() {
		c.met().RecordLookup(ctx, time.Since(start))
	}()

	k, err := c.validator.Validate(t)
	if err != nil {
		return "", c.miss(ctx, localeOf(k))
	}
	locale := localeOf(k)
	id := k.ID()

	c.mu.RLock()
	var e *entry
	if c.entries != nil {
		e = c.entries[id]
	}
	c.mu.RUnlock()

	if e == nil {
		return "", c.miss(ctx, locale)
	}

	if !time.Now().Before(e.expiresAt) {
		// Lazy expiry: the entry is removed but this is not an eviction;
		// only sweep, pattern, and clear removals count there.
		c.removeEntry(id, e)
		return "", c.miss(ctx, locale)
	}

	value, err := c.guard.Verify(e.value)
	if err != nil {
		c.removeEntry(id, e)
		c.log().Warn(ctx, "cache entry failed verification, evicting",
			observe.Field{Key: "key", Value: id},
			observe.Field{Key: "error", Value: err.Error()},
		)
		return "", c.miss(ctx, locale)
	}

	c.stats.hits.Add(1)
	c.met().RecordHit(ctx, locale)
	return value, true
}

// Delete removes the entry for t. Idempotent: deleting an absent key is
// a successful no-op. Delete is defined on any key shape and performs no
// validation.
func (c *Cache) Delete(_ context.Context, t key.Tuple) error {
	id := key.New(t).ID()
	c.mu.Lock()
	if old, ok := c.entries[id]; ok {
		c.approxBytes.Add(-old.size())
		delete(c.entries, id)
	}
	c.mu.Unlock()
	return nil
}

// Clear removes every entry. The removals count as evictions; hit and
// miss counters are untouched.
func (c *Cache) Clear(ctx context.Context) {
	c.mu.Lock()
	if c.entries == nil {
		c.mu.Unlock()
		return
	}
	removed := len(c.entries)
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
	c.approxBytes.Store(0)

	if removed > 0 {
		c.stats.evictions.Add(uint64(removed))
		c.met().RecordEvictions(ctx, int64(removed), "clear")
	}
}

// Size returns the current entry count.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// miss records a miss and returns false, for use as a tail call.
func (c *Cache) miss(ctx context.Context, locale string) bool {
	c.stats.misses.Add(1)
	c.met().RecordMiss(ctx, locale)
	return false
}

// removeEntry deletes id only while it still holds e, so a concurrent
// overwrite is never clobbered by a stale lazy removal.
func (c *Cache) removeEntry(id string, e *entry) {
	c.mu.Lock()
	if cur, ok := c.entries[id]; ok && cur == e {
		c.approxBytes.Add(-e.size())
		delete(c.entries, id)
	}
	c.mu.Unlock()
}

func (c *Cache) log() observe.Logger {
	if c.logger == nil {
		return observe.NopLogger{}
	}
	return c.logger
}

func (c *Cache) met() observe.Metrics {
	if c.metrics == nil {
		return observe.NopMetrics{}
	}
	return c.metrics
}

func (c *Cache) trace() observe.Tracer {
	if c.tracer == nil {
		return observe.NopTracer{}
	}
	return c.tracer
}

func localeOf(k key.Key) string {
	if canonical, ok := k.Canonical(); ok {
		return canonical.Locale
	}
	return ""
}
