package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records cache lookup outcomes and evictions.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; recording never blocks the cache.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordHit records a successful lookup for the given locale.
	RecordHit(ctx context.Context, locale string)

	// RecordMiss records a failed lookup for the given locale.
	RecordMiss(ctx context.Context, locale string)

	// RecordEvictions records n removed entries with the removal reason
	// (sweep, pattern, clear).
	RecordEvictions(ctx context.Context, n int64, reason string)

	// RecordLookup records the duration of a Get call.
	RecordLookup(ctx context.Context, duration time.Duration)
}

// metricsImpl is the OpenTelemetry-backed implementation of Metrics.
type metricsImpl struct {
	hits         metric.Int64Counter
	misses       metric.Int64Counter
	evictions    metric.Int64Counter
	lookupMillis metric.Float64Histogram
}

// NewMetrics creates a Metrics instance on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	hits, err := meter.Int64Counter(
		"cache.lookup.hits",
		metric.WithDescription("Translation cache lookups served from the cache"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		"cache.lookup.misses",
		metric.WithDescription("Translation cache lookups that fell through"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	evictions, err := meter.Int64Counter(
		"cache.evictions",
		metric.WithDescription("Entries removed by sweep, pattern invalidation, or clear"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	lookupMillis, err := meter.Float64Histogram(
		"cache.lookup.duration_ms",
		metric.WithDescription("Translation cache lookup duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		hits:         hits,
		misses:       misses,
		evictions:    evictions,
		lookupMillis: lookupMillis,
	}, nil
}

func (m *metricsImpl) RecordHit(ctx context.Context, locale string) {
	m.hits.Add(ctx, 1, localeAttr(locale))
}

func (m *metricsImpl) RecordMiss(ctx context.Context, locale string) {
	m.misses.Add(ctx, 1, localeAttr(locale))
}

func (m *metricsImpl) RecordEvictions(ctx context.Context, n int64, reason string) {
	if n <= 0 {
		return
	}
	m.evictions.Add(ctx, n, metric.WithAttributes(attribute.String("cache.eviction.reason", reason)))
}

func (m *metricsImpl) RecordLookup(ctx context.Context, duration time.Duration) {
	m.lookupMillis.Record(ctx, float64(duration.Microseconds())/1000.0)
}

func localeAttr(locale string) metric.AddOption {
	if locale == "" {
		locale = "unknown"
	}
	return metric.WithAttributes(attribute.String("cache.locale", locale))
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

func (NopMetrics) RecordHit(context.Context, string)              {}
func (NopMetrics) RecordMiss(context.Context, string)             {}
func (NopMetrics) RecordEvictions(context.Context, int64, string) {}
func (NopMetrics) RecordLookup(context.Context, time.Duration)    {}

// Ensure implementations satisfy Metrics.
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = NopMetrics{}
)
