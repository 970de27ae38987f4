package calc

import (
	"strings"

	mdwerror "github.com/msto63/complexkit/foundation/core/error"
	"github.com/msto63/complexkit/foundation/utils/complexx"
)

// Op names a binary complex operation
type Op string

const (
	OpPlus      Op = "plus"
	OpMinus     Op = "minus"
	OpTimes     Op = "times"
	OpDividedBy Op = "dividedBy"
)

// Ops returns all supported operations in display order
func Ops() []Op {
	return []Op{OpPlus, OpMinus, OpTimes, OpDividedBy}
}

// Symbol returns the infix symbol for op
func (o Op) Symbol() string {
	switch o {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpTimes:
		return "*"
	case OpDividedBy:
		return "/"
	default:
		return "?"
	}
}

// ParseOp accepts operation names, short aliases and symbols
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plus", "add", "+":
		return OpPlus, nil
	case "minus", "sub", "-":
		return OpMinus, nil
	case "times", "mul", "*", "x":
		return OpTimes, nil
	case "dividedby", "div", "/":
		return OpDividedBy, nil
	default:
		return "", unknownOp(s)
	}
}

// Apply evaluates a op b. It only fails for an unknown op; arithmetic
// edge cases come back as NaN or Inf components.
func Apply(op Op, a, b complexx.Complex) (complexx.Complex, error) {
	switch op {
	case OpPlus:
		return a.Plus(b), nil
	case OpMinus:
		return a.Minus(b), nil
	case OpTimes:
		return a.Times(b), nil
	case OpDividedBy:
		return a.DividedBy(b), nil
	default:
		return complexx.Complex{}, unknownOp(string(op))
	}
}

func unknownOp(s string) *mdwerror.Error {
	return mdwerror.New("unknown operation: "+s).
		WithCode(mdwerror.CodeInvalidOperation).
		WithSeverity(mdwerror.SeverityLow).
		WithOperation("calc.ParseOp").
		WithDetail("op", s)
}
