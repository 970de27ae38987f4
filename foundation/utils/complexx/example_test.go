// File: example_test.go
// Title: Example Tests for complexx Package Documentation
// Description: Executable examples that double as documentation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial examples

package complexx_test

import (
	"fmt"

	"github.com/msto63/complexkit/foundation/utils/complexx"
)

func ExampleNew() {
	c := complexx.New(3, 4)

	fmt.Println(c)
	fmt.Println(c.RealPart(), c.ImaginaryPart())
	// Output:
	// (3.0 + 4.0i)
	// 3 4
}

func ExampleComplex_Times() {
	fmt.Println(complexx.I().Times(complexx.I()))
	fmt.Println(complexx.New(3, 4).Times(complexx.New(1, -2)))
	// Output:
	// (-1.0 + 0.0i)
	// (11.0 + -2.0i)
}

func ExampleComplex_DividedBy() {
	fmt.Println(complexx.New(11, -2).DividedBy(complexx.New(1, -2)))
	fmt.Println(complexx.One().DividedBy(complexx.Zero()))
	// Output:
	// (3.0 + 4.0i)
	// (NaN + NaNi)
}

func ExampleComplex_Equal() {
	a := complexx.New(1, 2)

	fmt.Println(a.Equal(complexx.New(1, 2)))
	fmt.Println(a.Plus(complexx.Zero()).Equal(a))
	// Output:
	// true
	// true
}

func ExampleParse() {
	c, err := complexx.Parse("(1.5 + -2.0i)")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(c.Conjugate())
	// Output:
	// (1.5 + 2.0i)
}
