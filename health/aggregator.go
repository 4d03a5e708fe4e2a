package health

import (
	"context"
	"sync"
	"time"
)

// AggregatorConfig configures the fan-out of registered probes.
type AggregatorConfig struct {
	// Timeout bounds a full CheckAll pass. Default: 10 seconds.
	Timeout time.Duration
}

// Aggregator runs a set of named probes and folds their results into
// a single status.
type Aggregator struct {
	config   AggregatorConfig
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewAggregator creates an empty aggregator.
func NewAggregator(config ...AggregatorConfig) *Aggregator {
	cfg := AggregatorConfig{Timeout: 10 * time.Second}
	if len(config) > 0 && config[0].Timeout > 0 {
		cfg = config[0]
	}
	return &Aggregator{config: cfg, checkers: make(map[string]Checker)}
}

// Register adds or replaces the probe under checker.Name().
func (a *Aggregator) Register(checker Checker) {
	a.mu.Lock()
	a.checkers[checker.Name()] = checker
	a.mu.Unlock()
}

// Unregister removes the named probe.
func (a *Aggregator) Unregister(name string) {
	a.mu.Lock()
	delete(a.checkers, name)
	a.mu.Unlock()
}

// Check runs the single named probe.
func (a *Aggregator) Check(ctx context.Context, name string) (Result, error) {
	a.mu.RLock()
	checker, ok := a.checkers[name]
	a.mu.RUnlock()
	if !ok {
		return Result{}, ErrCheckerNotFound
	}
	return a.run(ctx, checker), nil
}

// CheckAll runs every registered probe in parallel under the shared
// timeout, keyed by probe name.
func (a *Aggregator) CheckAll(ctx context.Context) map[string]Result {
	a.mu.RLock()
	checkers := make(map[string]Checker, len(a.checkers))
	for name, checker := range a.checkers {
		checkers[name] = checker
	}
	a.mu.RUnlock()

	results := make(map[string]Result, len(checkers))
	if len(checkers) == 0 {
		return results
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	var wg sync.WaitGroup
	var resMu sync.Mutex
	for name, checker := range checkers {
		wg.Add(1)
		go func(name string, checker Checker) {
			defer wg.Done()
			result := a.run(ctx, checker)
			resMu.Lock()
			results[name] = result
			resMu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	return results
}

// OverallStatus folds results into one status: unhealthy dominates,
// then degraded. An empty set is healthy.
func (a *Aggregator) OverallStatus(results map[string]Result) Status {
	overall := StatusHealthy
	for _, result := range results {
		switch result.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			overall = StatusDegraded
		}
	}
	return overall
}

func (a *Aggregator) run(ctx context.Context, checker Checker) Result {
	start := time.Now()
	resultCh := make(chan Result, 1)

	go func() {
		result := checker.Check(ctx)
		result.Duration = time.Since(start)
		if result.Timestamp.IsZero() {
			result.Timestamp = start
		}
		resultCh <- result
	}()

	select {
	case result := <-resultCh:
		return result
	case <-ctx.Done():
		return Result{
			Status:    StatusUnhealthy,
			Message:   "check timed out",
			Error:     ErrCheckTimeout,
			Duration:  time.Since(start),
			Timestamp: start,
		}
	}
}
