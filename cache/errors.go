package cache

import "errors"

// ErrCacheUnavailable indicates the cache has not been started or has
// been stopped. Store operations never return it; they degrade to their
// miss or no-op behavior instead. It is reported by Ready and by the
// health surface.
var ErrCacheUnavailable = errors.New("cache: cache is unavailable")
