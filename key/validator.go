package key

import "regexp"

// Field size limits, in bytes.
const (
	MaxResourceLength = 200
	MaxFieldLength    = 100
	MaxLocaleLength   = 10
	MaxRecordIDLength = 100
)

// resourcePattern requires a module-qualified type name: two or more
// dot-separated capitalized segments, e.g. "Catalog.Product".
var resourcePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*(\.[A-Z][A-Za-z0-9]*)+$`)

// localePattern accepts "ll" or "ll_CC", e.g. "en" or "pt_BR".
var localePattern = regexp.MustCompile(`^[a-z]{2}(_[A-Z]{2})?$`)

// Validator validates cache keys before store operations.
//
// The zero value validates canonical 5-tuples, passes every other tuple
// shape through unchanged, and audits nothing. Strict disables the
// passthrough; Auditor receives exactly one record per Validate call.
type Validator struct {
	// Strict rejects non-canonical tuple shapes instead of passing them
	// through unvalidated.
	Strict bool

	// Auditor receives every validation outcome. Nil means no auditing.
	Auditor Auditor
}

// Validate checks t and returns the validated key. Exactly one audit
// record is emitted per call, on success and failure alike.
func (v Validator) Validate(t Tuple) (Key, error) {
	k, kind, err := v.classify(t)
	if v.Auditor != nil {
		v.Auditor.Record(err, t, kind)
	}
	return k, err
}

func (v Validator) classify(t Tuple) (Key, Kind, error) {
	if len(t) == 0 {
		return Key{}, KindInvalidKeyType, ErrInvalidKeyStructure
	}
	k := New(t)
	if _, ok := k.Canonical(); ok {
		if err := v.validateCanonical(t); err != nil {
			return Key{}, KindTranslationKey, err
		}
		return k, KindTranslationKey, nil
	}
	if v.Strict {
		return Key{}, KindTranslationKey, ErrInvalidKeyStructure
	}
	// Backward-compatible passthrough: non-canonical tuples are accepted
	// unvalidated.
	return k, KindTranslationKey, nil
}

// validateCanonical checks each position of a canonical tuple against its
// type, length, and format constraints, in that order.
func (v Validator) validateCanonical(t Tuple) error {
	resource, ok := t[1].(string)
	if !ok {
		return ErrInvalidResourceFormat
	}
	if len(resource) > MaxResourceLength {
		return ErrResourceNameTooLong
	}
	if !resourcePattern.MatchString(resource) {
		return ErrInvalidResourceFormat
	}

	field, ok := t[2].(string)
	if !ok {
		return ErrInvalidFieldType
	}
	if len(field) > MaxFieldLength {
		return ErrFieldNameTooLong
	}

	locale, ok := t[3].(string)
	if !ok {
		return ErrInvalidLocaleType
	}
	if len(locale) > MaxLocaleLength {
		return ErrLocaleTooLong
	}
	if !localePattern.MatchString(locale) {
		return ErrInvalidLocaleFormat
	}

	switch id := t[4].(type) {
	case string:
		if len(id) > MaxRecordIDLength {
			return ErrRecordIDTooLong
		}
	case int, int32, int64, uint64, float32, float64:
		if len(normalizePart(id)) > MaxRecordIDLength {
			return ErrRecordIDTooLong
		}
	default:
		return ErrInvalidRecordIDType
	}

	return nil
}
