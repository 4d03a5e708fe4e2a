// Package health exposes readiness probing for the translation cache.
//
// A Checker runs a single probe and returns a Result with a status of
// healthy, degraded, or unhealthy. CacheChecker probes a cache for
// availability and reports its usage counters; MemoryChecker watches
// process heap pressure, which matters for an in-process store. The
// Aggregator fans a set of checkers out under a shared timeout and
// folds their results into an overall status, and the http handlers
// expose liveness and readiness endpoints for orchestrators.
//
// Contract:
//   - Check must honor ctx cancellation and never block past the
//     aggregator timeout.
//   - A Result with StatusUnhealthy carries a non-nil Error.
//   - Checkers must be safe for concurrent use.
package health
