package secret

import (
	"context"
	"testing"
)

func TestRegistry_RegisterAndCreate(t *testing.T) {
	r := NewRegistry()

	err := r.Register("static", func(cfg map[string]any) (Provider, error) {
		return NewStaticProvider(map[string]string{"k": "v"}), nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Duplicate registration is rejected.
	err = r.Register("static", func(map[string]any) (Provider, error) { return nil, nil })
	if err == nil {
		t.Error("expected error for duplicate registration")
	}

	p, err := r.Create("static", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	got, err := p.Resolve(context.Background(), "k")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "v" {
		t.Errorf("Resolve = %q, want %q", got, "v")
	}

	if _, err := r.Create("missing", nil); err == nil {
		t.Error("expected error for unregistered provider")
	}
	if _, err := r.Create("", nil); err == nil {
		t.Error("expected error for empty provider name")
	}
}

func TestDefaultRegistry_HasEnv(t *testing.T) {
	names := DefaultRegistry.List()
	for _, n := range names {
		if n == "env" {
			return
		}
	}
	t.Errorf("DefaultRegistry.List() = %v, want it to contain env", names)
}
