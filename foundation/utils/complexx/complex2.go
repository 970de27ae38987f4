// File: complex2.go
// Title: Factory-Constructed Complex Variant
// Description: Complex2 can only be given a value through ValueOf. Its fields
//              are unexported, so packages outside complexx can neither set
//              them nor build a populated instance with a composite literal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package complexx

// Complex2 holds a complex number created exclusively by ValueOf.
// Keeping construction behind ValueOf leaves this package free to change
// how instances are produced without touching callers.
type Complex2 struct {
	re float64
	im float64
}

// ValueOf returns a new Complex2
func ValueOf(re, im float64) Complex2 {
	return Complex2{re: re, im: im}
}
