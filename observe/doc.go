// Package observe provides the telemetry surface of the translation
// cache: a structured JSON logger with field redaction, OpenTelemetry
// metrics for lookup outcomes and evictions, and tracing around compute
// callbacks.
package observe
