// Package cache provides the in-process translation value cache.
//
// It stores HMAC-signed translated strings under validated tuple keys
// with absolute expiry, and offers wildcard pattern invalidation, a
// periodic expiry sweep, usage statistics, and asynchronous warmup. The
// cache is a transparent optimization: the read path never surfaces an
// error, only a miss.
package cache
