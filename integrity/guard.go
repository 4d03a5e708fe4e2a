package integrity

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// SecretSize is the size in bytes of a generated signing secret.
const SecretSize = 32

// SignedValue is a serialized value together with its HMAC-SHA256 tag.
type SignedValue struct {
	Payload []byte
	MAC     []byte
}

// Guard signs values on write and verifies them on read.
//
// Contract:
// - Concurrency: safe for concurrent use; the secret is read-only.
// - Errors: Verify never panics on malformed input; it fails closed.
type Guard struct {
	secret []byte
}

// New creates a Guard with the given secret. An empty secret generates
// SecretSize cryptographically random bytes instead. A generated secret
// is not persisted, so values signed before a process restart will not
// verify afterward; callers that need restart survival must supply the
// secret through configuration.
func New(secret []byte) (*Guard, error) {
	if len(secret) == 0 {
		secret = make([]byte, SecretSize)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("integrity: generating secret: %w", err)
		}
		return &Guard{secret: secret}, nil
	}
	// Copy so later mutation of the caller's slice cannot change the
	// process-wide signing key.
	owned := make([]byte, len(secret))
	copy(owned, secret)
	return &Guard{secret: owned}, nil
}

// Sign serializes value and computes its MAC.
func (g *Guard) Sign(value string) (SignedValue, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return SignedValue{}, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	return SignedValue{Payload: payload, MAC: g.mac(payload)}, nil
}

// Verify checks the MAC over the stored payload and deserializes the
// value. The MAC compare is constant-time. A structurally malformed
// signed value returns ErrInvalidSignedValueFormat, a MAC mismatch
// ErrInvalidSignature, and a payload that fails to decode
// ErrVerificationFailed; decoding never executes anything.
func (g *Guard) Verify(sv SignedValue) (string, error) {
	if len(sv.Payload) == 0 || len(sv.MAC) != sha256.Size {
		return "", ErrInvalidSignedValueFormat
	}
	if !hmac.Equal(sv.MAC, g.mac(sv.Payload)) {
		return "", ErrInvalidSignature
	}
	var value string
	if err := json.Unmarshal(sv.Payload, &value); err != nil {
		return "", fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	return value, nil
}

func (g *Guard) mac(payload []byte) []byte {
	h := hmac.New(sha256.New, g.secret)
	h.Write(payload)
	return h.Sum(nil)
}

// Size returns the approximate in-memory footprint of the signed value.
func (sv SignedValue) Size() int {
	return len(sv.Payload) + len(sv.MAC)
}
