package integrity

import "errors"

// Signing and verification errors.
var (
	ErrSigningFailed            = errors.New("integrity: signing failed")
	ErrInvalidSignature         = errors.New("integrity: signature mismatch")
	ErrVerificationFailed       = errors.New("integrity: payload verification failed")
	ErrInvalidSignedValueFormat = errors.New("integrity: malformed signed value")
)
