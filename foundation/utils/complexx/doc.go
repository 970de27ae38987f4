// File: doc.go
// Title: Package Documentation for complexx
// Description: Package complexx provides an immutable complex number value
//              type with functional arithmetic, plus the Complex2 type that
//              shows how a factory function controls instance creation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package complexx provides an immutable complex number value type.
//
// Overview
//
// Complex is a pair of float64 values (real, imaginary). Its fields are
// unexported and every method has a value receiver, so once a Complex is
// built nothing can change it. Arithmetic methods are named with
// prepositions (Plus, Minus, Times, DividedBy) rather than verbs: they return
// a new value and leave both operands untouched.
//
// Values can be shared freely between goroutines; no locking is involved
// anywhere in this package.
//
// Floating-Point Semantics
//
// No operation validates its input or reports an error. NaN and Infinity
// are accepted by New and propagate through arithmetic following IEEE-754.
// In particular DividedBy(Zero()) yields NaN or Infinity components rather
// than failing.
//
// Equality uses a total-order comparison of each component instead of ==:
// NaN equals NaN, and -0.0 is distinct from 0.0. Hash is consistent with
// Equal.
//
// Usage Examples
//
//	a := complexx.New(3, 4)
//	b := complexx.I()
//
//	fmt.Println(a.Times(b))            // (-4.0 + 3.0i)
//	fmt.Println(a.DividedBy(a))        // (1.0 + 0.0i)
//	fmt.Println(a.Equal(complexx.New(3, 4))) // true
//
//	c, err := complexx.Parse("(1.5 + -2.0i)")
//
// Text Form
//
// String renders "(re + imi)" with each component in the classic double
// text form: at least one fractional digit ("3.0"), scientific notation
// outside [1e-3, 1e7) ("1.0E10"), and the words NaN, Infinity and
// -Infinity. Parse accepts that form back, as well as the short pair form
// "re,im".
package complexx
