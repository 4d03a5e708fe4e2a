package cache

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/transcache/key"
	"github.com/jonwraymond/transcache/observe"
)

// WarmupEntry is one translation supplied by a Loader.
type WarmupEntry struct {
	Field    string
	RecordID string
	Value    string
}

// Loader fetches the translations of one resource/locale combination
// from the authoritative source, for use by Warmup.
type Loader func(ctx context.Context, resource, locale string) ([]WarmupEntry, error)

// warmupConcurrency bounds the number of resource/locale pairs loaded at
// once.
const warmupConcurrency = 4

// Warmup schedules an asynchronous preload of every resource/locale
// combination and returns immediately. Load failures and panics are
// logged and isolated; nothing propagates to the caller. Without a
// configured Loader this is a no-op.
func (c *Cache) Warmup(ctx context.Context, resources, locales []string) {
	if c.loader == nil {
		c.log().Debug(ctx, "warmup skipped, no loader configured")
		return
	}
	// The task outlives the caller; its context must too.
	go c.warmup(context.WithoutCancel(ctx), resources, locales)
}

func (c *Cache) warmup(ctx context.Context, resources, locales []string) {
	var g errgroup.Group
	g.SetLimit(warmupConcurrency)

	for _, resource := range resources {
		for _, locale := range locales {
			g.Go(func() error {
				// Each task recovers for itself; errgroup runs it on
				// its own goroutine.
				defer func() {
					if r := recover(); r != nil {
						c.log().Error(ctx, "warmup panicked",
							observe.Field{Key: "resource", Value: resource},
							observe.Field{Key: "locale", Value: locale},
							observe.Field{Key: "panic", Value: fmt.Sprint(r)},
						)
					}
				}()

				entries, err := c.loader(ctx, resource, locale)
				if err != nil {
					c.log().Error(ctx, "warmup load failed",
						observe.Field{Key: "resource", Value: resource},
						observe.Field{Key: "locale", Value: locale},
						observe.Field{Key: "error", Value: err.Error()},
					)
					return nil
				}
				for _, e := range entries {
					t := key.Tuple{key.Tag, resource, e.Field, locale, e.RecordID}
					_ = c.Put(ctx, t, e.Value, 0)
				}
				c.log().Debug(ctx, "warmup loaded",
					observe.Field{Key: "resource", Value: resource},
					observe.Field{Key: "locale", Value: locale},
					observe.Field{Key: "entries", Value: len(entries)},
				)
				return nil
			})
		}
	}
	_ = g.Wait()
}
