// File: float.go
// Title: Float64 Comparison, Hashing and Formatting
// Description: Total-order comparison, bit-pattern hashing and the classic
//              double text rendering used by Complex.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package complexx

import (
	"math"
	"strconv"
	"strings"
)

// canonicalNaN is the single bit pattern every NaN is folded into
const canonicalNaN uint64 = 0x7ff8000000000000

// Decimal notation is used for magnitudes in [minPlain, maxPlain)
const (
	minPlain = 1e-3
	maxPlain = 1e7
)

func canonicalBits(f float64) uint64 {
	if math.IsNaN(f) {
		return canonicalNaN
	}
	return math.Float64bits(f)
}

// compareFloat orders float64 values totally:
// -Inf < ... < -0.0 < 0.0 < ... < +Inf < NaN, and NaN == NaN.
func compareFloat(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}

	ab := int64(canonicalBits(a))
	bb := int64(canonicalBits(b))
	switch {
	case ab == bb:
		return 0
	case ab < bb:
		return -1
	default:
		return 1
	}
}

// hashFloat folds the 64 canonical bits into 32
func hashFloat(f float64) int32 {
	bits := canonicalBits(f)
	return int32(bits ^ (bits >> 32))
}

// formatFloat renders f with at least one fractional digit, switching to
// scientific notation outside [1e-3, 1e7).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= minPlain && abs < maxPlain) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv gives e.g. "1.5E-05"; normalize to "1.5E-5"
	s := strconv.FormatFloat(f, 'E', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(exp)
}

// FormatFloat renders a single component the way String does
func FormatFloat(f float64) string {
	return formatFloat(f)
}

// parseFloat accepts everything formatFloat produces
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
