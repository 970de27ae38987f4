// File: complex.go
// Title: Immutable Complex Number
// Description: Implements the Complex value type with functional arithmetic,
//              total-order equality, hashing and canonical text form.
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
)

// Complex is an immutable complex number
type Complex struct {
	re float64
	im float64
}

// New creates a complex number. Any float64, including NaN and Inf, is accepted.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Zero returns 0 + 0i
func Zero() Complex {
	return Complex{}
}

// One returns 1 + 0i
func One() Complex {
	return Complex{re: 1}
}

// I returns the imaginary unit 0 + 1i
func I() Complex {
	return Complex{im: 1}
}

// RealPart returns the real component
func (c Complex) RealPart() float64 {
	return c.re
}

// ImaginaryPart returns the imaginary component
func (c Complex) ImaginaryPart() float64 {
	return c.im
}

// Plus returns c + other
func (c Complex) Plus(other Complex) Complex {
	return Complex{re: c.re + other.re, im: c.im + other.im}
}

// Minus returns c - other
func (c Complex) Minus(other Complex) Complex {
	return Complex{re: c.re - other.re, im: c.im - other.im}
}

// Times returns c * other
func (c Complex) Times(other Complex) Complex {
	return Complex{
		re: c.re*other.re - c.im*other.im,
		im: c.re*other.im + c.im*other.re,
	}
}

// DividedBy returns c / other.
// A zero divisor is not trapped: the components become NaN or ±Inf.
func (c Complex) DividedBy(other Complex) Complex {
	d := other.re*other.re + other.im*other.im
	return Complex{
		re: (c.re*other.re + c.im*other.im) / d,
		im: (c.im*other.re - c.re*other.im) / d,
	}
}

// Equal reports whether both components compare equal under the float
// total order, so NaN equals NaN and -0.0 differs from 0.0.
func (c Complex) Equal(other Complex) bool {
	return compareFloat(c.re, other.re) == 0 &&
		compareFloat(c.im, other.im) == 0
}

// Hash returns a hash consistent with Equal
func (c Complex) Hash() int32 {
	return 31*hashFloat(c.re) + hashFloat(c.im)
}

// String returns "(re + imi)"
func (c Complex) String() string {
	return "(" + formatFloat(c.re) + " + " + formatFloat(c.im) + "i)"
}

// ApproxEqual reports whether each component differs by at most tol.
// Use it where rounding is expected; Equal is exact.
func (c Complex) ApproxEqual(other Complex, tol float64) bool {
	return math.Abs(c.re-other.re) <= tol && math.Abs(c.im-other.im) <= tol
}

// Neg returns -c
func (c Complex) Neg() Complex {
	return Complex{re: -c.re, im: -c.im}
}

// Conjugate returns re - imi
func (c Complex) Conjugate() Complex {
	return Complex{re: c.re, im: -c.im}
}

// Abs returns the modulus |c|
func (c Complex) Abs() float64 {
	return math.Hypot(c.re, c.im)
}

// IsNaN reports whether either component is NaN
func (c Complex) IsNaN() bool {
	return math.IsNaN(c.re) || math.IsNaN(c.im)
}

// IsInf reports whether either component is infinite
func (c Complex) IsInf() bool {
	return math.IsInf(c.re, 0) || math.IsInf(c.im, 0)
}
