package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

func staticChecker(name string, result Result) Checker {
	return NewCheckerFunc(name, func(ctx context.Context) Result { return result })
}

func TestAggregator_CheckAll(t *testing.T) {
	agg := NewAggregator()
	agg.Register(staticChecker("a", Healthy("ok")))
	agg.Register(staticChecker("b", Degraded("slow")))

	results := agg.CheckAll(context.Background())
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results["a"].Status != StatusHealthy || results["b"].Status != StatusDegraded {
		t.Errorf("results = %+v", results)
	}
	if results["a"].Duration < 0 {
		t.Error("duration not recorded")
	}
}

func TestAggregator_CheckAllEmpty(t *testing.T) {
	results := NewAggregator().CheckAll(context.Background())
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestAggregator_Check(t *testing.T) {
	agg := NewAggregator()
	agg.Register(staticChecker("a", Healthy("ok")))

	r, err := agg.Check(context.Background(), "a")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if r.Status != StatusHealthy {
		t.Errorf("Status = %v", r.Status)
	}

	if _, err := agg.Check(context.Background(), "missing"); !errors.Is(err, ErrCheckerNotFound) {
		t.Errorf("err = %v, want ErrCheckerNotFound", err)
	}
}

func TestAggregator_Unregister(t *testing.T) {
	agg := NewAggregator()
	agg.Register(staticChecker("a", Healthy("ok")))
	agg.Unregister("a")

	if _, err := agg.Check(context.Background(), "a"); !errors.Is(err, ErrCheckerNotFound) {
		t.Errorf("err = %v, want ErrCheckerNotFound", err)
	}
}

func TestAggregator_OverallStatus(t *testing.T) {
	agg := NewAggregator()
	tests := []struct {
		name    string
		results map[string]Result
		want    Status
	}{
		{"empty", map[string]Result{}, StatusHealthy},
		{"all healthy", map[string]Result{"a": Healthy("")}, StatusHealthy},
		{"one degraded", map[string]Result{"a": Healthy(""), "b": Degraded("")}, StatusDegraded},
		{"unhealthy dominates", map[string]Result{
			"a": Degraded(""), "b": Unhealthy("", errors.New("x")),
		}, StatusUnhealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := agg.OverallStatus(tt.results); got != tt.want {
				t.Errorf("OverallStatus = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregator_Timeout(t *testing.T) {
	agg := NewAggregator(AggregatorConfig{Timeout: 20 * time.Millisecond})
	agg.Register(NewCheckerFunc("stuck", func(ctx context.Context) Result {
		<-ctx.Done()
		time.Sleep(time.Second)
		return Healthy("too late")
	}))

	results := agg.CheckAll(context.Background())
	r := results["stuck"]
	if r.Status != StatusUnhealthy {
		t.Fatalf("Status = %v, want unhealthy", r.Status)
	}
	if !errors.Is(r.Error, ErrCheckTimeout) {
		t.Errorf("Error = %v, want ErrCheckTimeout", r.Error)
	}
}
