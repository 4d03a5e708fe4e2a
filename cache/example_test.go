package cache_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/transcache/cache"
	"github.com/jonwraymond/transcache/key"
)

func ExampleNew() {
	c, _ := cache.New(cache.Config{})
	defer c.Stop()

	ctx := context.Background()

	// Store a translated field value
	_ = c.Put(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "en", "42"}, "Red Chair", 5*time.Minute)

	// Retrieve it
	value, ok := c.Get(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "en", "42"})
	if ok {
		fmt.Println("Value:", value)
	}
	// Output:
	// Value: Red Chair
}

func ExampleCache_Get() {
	c, _ := cache.New(cache.Config{})
	defer c.Stop()
	ctx := context.Background()

	// Miss - key was never stored
	_, ok := c.Get(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "en", "1"})
	fmt.Println("Missing key found:", ok)

	// Put and get
	_ = c.Put(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "en", "1"}, "Desk", time.Hour)
	value, ok := c.Get(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "en", "1"})
	fmt.Println("Existing key found:", ok)
	fmt.Println("Value:", value)
	// Output:
	// Missing key found: false
	// Existing key found: true
	// Value: Desk
}

func ExampleCache_DeletePattern() {
	c, _ := cache.New(cache.Config{})
	defer c.Stop()
	ctx := context.Background()

	_ = c.Put(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "en", "1"}, "Desk", time.Hour)
	_ = c.Put(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "es", "1"}, "Escritorio", time.Hour)
	_ = c.Put(ctx, key.Tuple{key.Tag, "Catalog.Category", "name", "en", "1"}, "Office", time.Hour)

	// Drop every locale of product 1
	removed := c.DeletePattern(ctx, cache.NewPattern(key.Tag, "Catalog.Product", "name", cache.Wildcard, "1"))
	fmt.Println("Removed:", removed)
	fmt.Println("Remaining:", c.Size())
	// Output:
	// Removed: 2
	// Remaining: 1
}

func ExampleCache_Fetch() {
	c, _ := cache.New(cache.Config{})
	defer c.Stop()
	ctx := context.Background()

	compute := func(ctx context.Context) string { return "Silla Roja" }

	// First call computes and stores
	v := c.Fetch(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "es", "42"}, compute)
	fmt.Println("First:", v)

	// Second call is served from the cache
	v = c.Fetch(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "es", "42"}, func(ctx context.Context) string {
		return "should not run"
	})
	fmt.Println("Second:", v)
	// Output:
	// First: Silla Roja
	// Second: Silla Roja
}

func ExampleCache_Stats() {
	c, _ := cache.New(cache.Config{})
	defer c.Stop()
	ctx := context.Background()

	k := key.Tuple{key.Tag, "Catalog.Product", "name", "en", "7"}
	_ = c.Put(ctx, k, "Lamp", time.Hour)

	c.Get(ctx, k)                                                  // hit
	c.Get(ctx, key.Tuple{key.Tag, "Catalog.Product", "name", "en", "8"}) // miss

	report := c.Stats()
	fmt.Println("Size:", report.Size)
	fmt.Println("Hits:", report.Hits)
	fmt.Println("Misses:", report.Misses)
	fmt.Println("HitRate:", report.HitRate)
	// Output:
	// Size: 1
	// Hits: 1
	// Misses: 1
	// HitRate: 50
}
