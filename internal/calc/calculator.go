// Package calc evaluates binary operations on complex numbers and hands
// each result to an optional recorder.
package calc

import (
	"context"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/complexkit/foundation/core/error"
	mdwlog "github.com/msto63/complexkit/foundation/core/log"
	"github.com/msto63/complexkit/foundation/utils/complexx"
)

// Calculation is one evaluated operation
type Calculation struct {
	ID        string
	Op        Op
	Left      complexx.Complex
	Right     complexx.Complex
	Result    complexx.Complex
	CreatedAt time.Time
}

// Expression renders the calculation as "left op right = result"
func (c Calculation) Expression() string {
	return c.Left.String() + " " + c.Op.Symbol() + " " + c.Right.String() + " = " + c.Result.String()
}

// Recorder persists calculations
type Recorder interface {
	Record(ctx context.Context, c Calculation) error
}

// Calculator evaluates operations
type Calculator struct {
	recorder Recorder
	logger   *mdwlog.Logger
	now      func() time.Time
}

// Config holds configuration for a Calculator
type Config struct {
	// Recorder receives every evaluated calculation, nil disables recording
	Recorder Recorder

	// Logger defaults to a discarding logger
	Logger *mdwlog.Logger

	// Now overrides the timestamp source
	Now func() time.Time
}

// New creates a Calculator
func New(cfg Config) *Calculator {
	c := &Calculator{
		recorder: cfg.Recorder,
		logger:   cfg.Logger,
		now:      cfg.Now,
	}
	if c.logger == nil {
		c.logger = mdwlog.Discard()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Evaluate computes a op b and records it when a recorder is set.
// If recording fails the calculation is still returned together with the error.
func (c *Calculator) Evaluate(ctx context.Context, op Op, a, b complexx.Complex) (Calculation, error) {
	if err := ctx.Err(); err != nil {
		return Calculation{}, mdwerror.Wrap(err, "evaluation cancelled").
			WithOperation("calc.Evaluate")
	}

	result, err := Apply(op, a, b)
	if err != nil {
		return Calculation{}, err
	}

	calculation := Calculation{
		ID:        uuid.New().String(),
		Op:        op,
		Left:      a,
		Right:     b,
		Result:    result,
		CreatedAt: c.now().UTC(),
	}

	c.logger.Debug("evaluated", mdwlog.Fields{
		"id":     calculation.ID,
		"op":     string(op),
		"result": result.String(),
	})
	if result.IsNaN() || result.IsInf() {
		c.logger.Info("non-finite result", mdwlog.Fields{"expression": calculation.Expression()})
	}

	if c.recorder == nil {
		return calculation, nil
	}

	if err := c.recorder.Record(ctx, calculation); err != nil {
		wrapped := mdwerror.Wrap(err, "failed to record calculation").
			WithDetail("id", calculation.ID)
		c.logger.LogError(wrapped)
		return calculation, wrapped
	}
	return calculation, nil
}
