// Package key defines translation cache keys and their validation.
//
// The canonical key is a 5-tuple ("translation", resource, field, locale,
// record id). Validate checks each position against the documented limits
// and reports every decision, accept or reject, to an Auditor. Tuples of
// any other shape pass through unvalidated unless strict mode is enabled.
package key
