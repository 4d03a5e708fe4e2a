package key

// Kind classifies a validated key for the audit sink.
type Kind string

const (
	// KindTranslationKey marks keys that arrived as a tuple, canonical or
	// not.
	KindTranslationKey Kind = "translation_key"

	// KindInvalidKeyType marks values that are not a usable tuple at all.
	KindInvalidKeyType Kind = "invalid_key_type"
)

// Auditor receives one record per Validate call, on both the accept and
// the reject path. It exists for forensic logging and is not required for
// correctness.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Record must be best-effort and must not panic.
type Auditor interface {
	// Record reports a validation outcome. outcome is nil on accept.
	Record(outcome error, key Tuple, kind Kind)
}

// NopAuditor discards every record.
type NopAuditor struct{}

// Record implements Auditor.
func (NopAuditor) Record(error, Tuple, Kind) {}

// AuditorFunc adapts a function to the Auditor interface.
type AuditorFunc func(outcome error, key Tuple, kind Kind)

// Record implements Auditor.
func (f AuditorFunc) Record(outcome error, key Tuple, kind Kind) {
	f(outcome, key, kind)
}

// Ensure implementations satisfy Auditor.
var (
	_ Auditor = NopAuditor{}
	_ Auditor = AuditorFunc(nil)
)
