package cache

import (
	"context"

	"github.com/jonwraymond/transcache/key"
	"github.com/jonwraymond/transcache/observe"
)

// wildcard is the "match anything" marker type for pattern positions.
type wildcard struct{}

// Wildcard matches any value at its position.
var Wildcard = wildcard{}

// Pattern is a positional key template: each position is either a
// literal or Wildcard. A stored key matches when arities are equal and
// every literal position equals the corresponding key position exactly.
type Pattern struct {
	parts []patternPart
}

type patternPart struct {
	wildcard bool
	value    string
}

// NewPattern builds a Pattern from literals and Wildcard markers.
// Literals are normalized the same way key positions are, so numeric and
// string forms of the same id match each other.
func NewPattern(parts ...any) Pattern {
	p := Pattern{parts: make([]patternPart, len(parts))}
	literals := make(key.Tuple, 0, len(parts))
	for _, part := range parts {
		if _, ok := part.(wildcard); !ok {
			literals = append(literals, part)
		}
	}
	normalized := key.New(literals).Parts()

	i := 0
	for pos, part := range parts {
		if _, ok := part.(wildcard); ok {
			p.parts[pos] = patternPart{wildcard: true}
			continue
		}
		p.parts[pos] = patternPart{value: normalized[i]}
		i++
	}
	return p
}

// Matches reports whether k matches the pattern. Keys of a different
// arity never match.
func (p Pattern) Matches(k key.Key) bool {
	parts := k.Parts()
	if len(parts) != len(p.parts) {
		return false
	}
	for i, pp := range p.parts {
		if pp.wildcard {
			continue
		}
		if parts[i] != pp.value {
			return false
		}
	}
	return true
}

// Arity returns the number of pattern positions.
func (p Pattern) Arity() int {
	return len(p.parts)
}

// DeletePattern removes every entry whose key matches p and returns the
// count. The sweep is atomic with respect to subsequent reads of the
// matched keys, and the removals count as evictions.
func (c *Cache) DeletePattern(ctx context.Context, p Pattern) int {
	c.mu.Lock()
	if c.entries == nil {
		c.mu.Unlock()
		return 0
	}
	var removedBytes int64
	removed := 0
	for id, e := range c.entries {
		if p.Matches(e.key) {
			removedBytes += e.size()
			delete(c.entries, id)
			removed++
		}
	}
	c.mu.Unlock()
	c.approxBytes.Add(-removedBytes)

	if removed > 0 {
		c.stats.evictions.Add(uint64(removed))
		c.met().RecordEvictions(ctx, int64(removed), "pattern")
		c.log().Debug(ctx, "pattern invalidation",
			observe.Field{Key: "removed", Value: removed},
		)
	}
	return removed
}

// InvalidateResource removes every cached field and locale of one
// record of a resource.
func (c *Cache) InvalidateResource(ctx context.Context, resource string, id any) int {
	return c.DeletePattern(ctx, NewPattern(key.Tag, resource, Wildcard, Wildcard, id))
}

// InvalidateField removes one field of a resource across all locales and
// records.
func (c *Cache) InvalidateField(ctx context.Context, resource, field string) int {
	return c.DeletePattern(ctx, NewPattern(key.Tag, resource, field, Wildcard, Wildcard))
}

// InvalidateLocale removes every entry of one locale across all
// resources.
func (c *Cache) InvalidateLocale(ctx context.Context, locale string) int {
	return c.DeletePattern(ctx, NewPattern(key.Tag, Wildcard, Wildcard, locale, Wildcard))
}
