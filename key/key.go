package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag is the first position of every canonical translation key.
const Tag = "translation"

// Arity is the number of positions in a canonical translation key.
const Arity = 5

// Tuple is the loosely typed wire shape of a cache key. Positions are
// compared by their normalized string form; numbers and strings with the
// same rendering are the same key.
type Tuple []any

// TranslationKey is the validated canonical key with named fields.
type TranslationKey struct {
	Resource string
	Field    string
	Locale   string
	RecordID string
}

// Key is a validated cache key: either a canonical TranslationKey or an
// opaque passthrough tuple kept for backward compatibility.
type Key struct {
	parts     []string
	canonical *TranslationKey
}

// New normalizes a tuple into a Key without validating it. Put and Get go
// through Validator.Validate instead; New exists for operations that are
// defined on any key, validated or not (Delete, pattern matching).
func New(t Tuple) Key {
	parts := make([]string, len(t))
	for i, p := range t {
		parts[i] = normalizePart(p)
	}
	k := Key{parts: parts}
	if len(t) == Arity && parts[0] == Tag {
		k.canonical = &TranslationKey{
			Resource: parts[1],
			Field:    parts[2],
			Locale:   parts[3],
			RecordID: parts[4],
		}
	}
	return k
}

// Canonical returns the typed translation key and true when the key has
// the canonical shape.
func (k Key) Canonical() (TranslationKey, bool) {
	if k.canonical == nil {
		return TranslationKey{}, false
	}
	return *k.canonical, true
}

// Parts returns the normalized positions of the key. The slice is shared;
// callers must not mutate it.
func (k Key) Parts() []string {
	return k.parts
}

// Arity returns the number of positions.
func (k Key) Arity() int {
	return len(k.parts)
}

// ID returns a collision-free string encoding of the key, suitable as a
// map key. Each part is length-prefixed so that part boundaries survive
// arbitrary part contents.
func (k Key) ID() string {
	var b strings.Builder
	for _, p := range k.parts {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}

// normalizePart renders a tuple position as a string. Integers and floats
// use their shortest decimal form so that 42 and "42" address the same
// entry.
func normalizePart(p any) string {
	switch v := p.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
