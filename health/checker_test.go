package health

import (
	"context"
	"errors"
	"testing"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
		{Status(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestResult_Constructors(t *testing.T) {
	h := Healthy("all good")
	if h.Status != StatusHealthy || h.Message != "all good" || h.Timestamp.IsZero() {
		t.Errorf("Healthy built %+v", h)
	}

	d := Degraded("slow")
	if d.Status != StatusDegraded || d.Error != nil {
		t.Errorf("Degraded built %+v", d)
	}

	cause := errors.New("down")
	u := Unhealthy("broken", cause)
	if u.Status != StatusUnhealthy || !errors.Is(u.Error, cause) {
		t.Errorf("Unhealthy built %+v", u)
	}
}

func TestResult_WithDetails(t *testing.T) {
	r := Healthy("ok").WithDetails(map[string]any{"size": 3})
	if r.Details["size"] != 3 {
		t.Errorf("Details = %v", r.Details)
	}
	if r.Status != StatusHealthy {
		t.Error("WithDetails changed status")
	}
}

func TestCheckerFunc(t *testing.T) {
	c := NewCheckerFunc("custom", func(ctx context.Context) Result {
		return Healthy("ran")
	})
	if c.Name() != "custom" {
		t.Errorf("Name = %q", c.Name())
	}
	if got := c.Check(context.Background()); got.Message != "ran" {
		t.Errorf("Check = %+v", got)
	}
}

func TestMemoryChecker_ThresholdDefaults(t *testing.T) {
	m := NewMemoryChecker(MemoryCheckerConfig{WarningThreshold: -1, CriticalThreshold: 5})
	if m.config.WarningThreshold != 0.8 || m.config.CriticalThreshold != 0.95 {
		t.Errorf("defaults not applied: %+v", m.config)
	}
}

func TestMemoryChecker_Check(t *testing.T) {
	// A huge ceiling keeps usage far below the warning threshold.
	m := NewMemoryChecker(MemoryCheckerConfig{MaxAlloc: 1 << 50})
	r := m.Check(context.Background())
	if r.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy: %s", r.Status, r.Message)
	}
	if _, ok := r.Details["alloc_bytes"]; !ok {
		t.Error("Details missing alloc_bytes")
	}
}

func TestMemoryChecker_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewMemoryChecker(MemoryCheckerConfig{}).Check(ctx)
	if r.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", r.Status)
	}
}
