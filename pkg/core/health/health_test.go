package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestResultHelpers(t *testing.T) {
	if r := Healthy("ok"); r.Status != StatusHealthy || r.Message != "ok" {
		t.Errorf("Healthy() = %+v", r)
	}
	if r := Unhealthy(errors.New("boom")); r.Status != StatusUnhealthy || r.Message != "boom" {
		t.Errorf("Unhealthy() = %+v", r)
	}
	if r := Skipped("disabled"); r.Status != StatusSkipped || r.Message != "disabled" {
		t.Errorf("Skipped() = %+v", r)
	}
}

func TestNewChecker(t *testing.T) {
	checker := NewChecker("arithmetic", func(ctx context.Context) CheckResult {
		return Healthy("identities hold")
	})

	if checker.Name() != "arithmetic" {
		t.Errorf("Name() = %v, want arithmetic", checker.Name())
	}
	if result := checker.Check(context.Background()); result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", result.Status)
	}
}

func TestRegistry_Check(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterFunc("history", func(ctx context.Context) CheckResult { return Healthy("3 entries") })
	registry.RegisterFunc("config", func(ctx context.Context) CheckResult { return Healthy("defaults") })
	registry.RegisterFunc("arithmetic", func(ctx context.Context) CheckResult { return Skipped("n/a") })

	report := registry.Check(context.Background())

	if report.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", report.Status)
	}
	if len(report.Checks) != 3 {
		t.Fatalf("Checks = %d, want 3", len(report.Checks))
	}
	for i, want := range []string{"arithmetic", "config", "history"} {
		if report.Checks[i].Name != want {
			t.Errorf("Checks[%d].Name = %v, want %v", i, report.Checks[i].Name, want)
		}
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
		{"skipped is neutral", []Status{StatusSkipped, StatusHealthy}, StatusHealthy},
		{"empty", nil, StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry()
			for i, s := range tt.statuses {
				status := s
				registry.RegisterFunc(string(rune('a'+i)), func(ctx context.Context) CheckResult {
					return CheckResult{Status: status}
				})
			}
			if got := registry.Check(context.Background()).Status; got != tt.want {
				t.Errorf("Status = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_ReplaceByName(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterFunc("history", func(ctx context.Context) CheckResult { return Unhealthy(errors.New("locked")) })
	registry.RegisterFunc("history", func(ctx context.Context) CheckResult { return Healthy("ok") })

	report := registry.Check(context.Background())
	if len(report.Checks) != 1 || report.Status != StatusHealthy {
		t.Errorf("report = %+v", report)
	}
}

func TestRegistry_ChecksRunConcurrently(t *testing.T) {
	registry := NewRegistry()
	var running, peak int32

	for _, name := range []string{"a", "b", "c"} {
		registry.RegisterFunc(name, func(ctx context.Context) CheckResult {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return Healthy("")
		})
	}

	report := registry.Check(context.Background())
	if len(report.Checks) != 3 {
		t.Fatalf("Checks = %d, want 3", len(report.Checks))
	}
	if atomic.LoadInt32(&peak) < 2 {
		t.Errorf("checks did not overlap, peak = %d", peak)
	}
	for _, c := range report.Checks {
		if c.Duration <= 0 {
			t.Errorf("%s: Duration not recorded", c.Name)
		}
	}
}

func TestRegistry_CheckWithTimeout(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterFunc("slow", func(ctx context.Context) CheckResult {
		select {
		case <-ctx.Done():
			return Unhealthy(ctx.Err())
		case <-time.After(time.Second):
			return Healthy("finished")
		}
	})

	report := registry.CheckWithTimeout(10 * time.Millisecond)
	if report.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", report.Status)
	}
}

func TestReport_String(t *testing.T) {
	r := &Report{Status: StatusDegraded, Checks: make([]CheckResult, 2)}
	if got := r.String(); got != "Status: degraded, Checks: 2" {
		t.Errorf("String() = %q", got)
	}
}
