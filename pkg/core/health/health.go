// ============================================================================
// complexkit - Complex Number Toolkit
// ============================================================================
//
// Package:     health
// Description: Self checks run by `complexkit status`
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package health

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Status represents the outcome of a check
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	StatusSkipped   Status = "skipped"
)

// CheckResult represents the result of a single check
type CheckResult struct {
	Name     string
	Status   Status
	Message  string
	Duration time.Duration
}

// Healthy returns a healthy result with msg
func Healthy(msg string) CheckResult {
	return CheckResult{Status: StatusHealthy, Message: msg}
}

// Unhealthy returns an unhealthy result describing err
func Unhealthy(err error) CheckResult {
	return CheckResult{Status: StatusUnhealthy, Message: err.Error()}
}

// Skipped returns a result for a check that does not apply
func Skipped(reason string) CheckResult {
	return CheckResult{Status: StatusSkipped, Message: reason}
}

// Checker is a named check
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type namedCheck struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &namedCheck{name: name, fn: fn}
}

func (c *namedCheck) Name() string {
	return c.name
}

func (c *namedCheck) Check(ctx context.Context) CheckResult {
	return c.fn(ctx)
}

// Registry runs a set of checkers concurrently
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{checkers: make(map[string]Checker)}
}

// Register adds a checker, replacing one with the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// RegisterFunc adds a check function
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) CheckResult) {
	r.Register(NewChecker(name, fn))
}

// Check runs all checks and aggregates the overall status.
// Results are sorted by name.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := &Report{Checks: make([]CheckResult, 0, len(r.checkers))}

	var wg sync.WaitGroup
	results := make(chan CheckResult, len(r.checkers))

	for _, checker := range r.checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			start := time.Now()
			result := c.Check(ctx)
			result.Duration = time.Since(start)
			if result.Name == "" {
				result.Name = c.Name()
			}
			results <- result
		}(checker)
	}

	wg.Wait()
	close(results)

	report.Status = StatusHealthy
	for result := range results {
		report.Checks = append(report.Checks, result)
		switch result.Status {
		case StatusUnhealthy:
			report.Status = StatusUnhealthy
		case StatusDegraded:
			if report.Status != StatusUnhealthy {
				report.Status = StatusDegraded
			}
		}
	}

	sort.Slice(report.Checks, func(i, j int) bool {
		return report.Checks[i].Name < report.Checks[j].Name
	})
	return report
}

// CheckWithTimeout runs all checks bounded by timeout
func (r *Registry) CheckWithTimeout(timeout time.Duration) *Report {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Check(ctx)
}

// Report is the aggregated outcome of all checks
type Report struct {
	Status Status
	Checks []CheckResult
}

// String returns a one-line summary
func (r *Report) String() string {
	return fmt.Sprintf("Status: %s, Checks: %d", r.Status, len(r.Checks))
}
