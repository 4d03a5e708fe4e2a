package secret

import (
	"context"
	"fmt"
	"os"
)

// Provider resolves secrets by reference string.
//
// Implementations must be safe for concurrent use and must not log secret
// values.
type Provider interface {
	Name() string
	Resolve(ctx context.Context, ref string) (string, error)
	Close() error
}

// EnvProvider resolves references as environment variable names.
type EnvProvider struct{}

// Name implements Provider.
func (EnvProvider) Name() string { return "env" }

// Resolve looks the ref up in the environment. Unset variables are an
// error; an empty value is returned as-is and left to the caller's
// strictness policy.
func (EnvProvider) Resolve(_ context.Context, ref string) (string, error) {
	value, ok := os.LookupEnv(ref)
	if !ok {
		return "", fmt.Errorf("secret: environment variable %q is not set", ref)
	}
	return value, nil
}

// Close implements Provider.
func (EnvProvider) Close() error { return nil }

// StaticProvider resolves references from a fixed map. It exists for
// tests and for embedding configuration-file secrets.
type StaticProvider struct {
	values map[string]string
}

// NewStaticProvider creates a StaticProvider over a copy of values.
func NewStaticProvider(values map[string]string) *StaticProvider {
	owned := make(map[string]string, len(values))
	for k, v := range values {
		owned[k] = v
	}
	return &StaticProvider{values: owned}
}

// Name implements Provider.
func (*StaticProvider) Name() string { return "static" }

// Resolve implements Provider.
func (p *StaticProvider) Resolve(_ context.Context, ref string) (string, error) {
	value, ok := p.values[ref]
	if !ok {
		return "", fmt.Errorf("secret: static ref %q is not defined", ref)
	}
	return value, nil
}

// Close implements Provider.
func (*StaticProvider) Close() error { return nil }

// Ensure implementations satisfy Provider.
var (
	_ Provider = EnvProvider{}
	_ Provider = (*StaticProvider)(nil)
)
