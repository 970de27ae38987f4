// File: parse_test.go
// Title: Unit Tests for Complex Parsing
// Description: Tests the canonical and pair input forms, round trips through
//              String, and error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial tests

package complexx

import (
	"math"
	"testing"

	mdwerror "github.com/msto63/complexkit/foundation/core/error"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Complex
		wantErr bool
	}{
		{"canonical", "(3.0 + 4.0i)", New(3, 4), false},
		{"canonical negative parts", "(-1.5 + -2.25i)", New(-1.5, -2.25), false},
		{"canonical scientific", "(1.0E10 + 1.0E-4i)", New(1e10, 1e-4), false},
		{"canonical non-finite", "(NaN + -Infinityi)", New(math.NaN(), math.Inf(-1)), false},
		{"surrounding space", "  (1.0 + 2.0i)  ", New(1, 2), false},
		{"pair", "3,4", New(3, 4), false},
		{"pair with spaces", " -1 , 0.5 ", New(-1, 0.5), false},
		{"empty", "", Complex{}, true},
		{"plain number", "3.0", Complex{}, true},
		{"missing unit", "(3.0 + 4.0)", Complex{}, true},
		{"missing separator", "(3.0 4.0i)", Complex{}, true},
		{"bad real", "(x + 4.0i)", Complex{}, true},
		{"bad imaginary", "1,y", Complex{}, true},
		{"empty parens", "()", Complex{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
					t.Errorf("Parse(%q) error code = %v, want %v", tt.input, mdwerror.GetCode(err), mdwerror.CodeInvalidFormat)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	values := []Complex{
		Zero(), One(), I(),
		New(3, 4),
		New(-0.1, 1234567.5),
		New(6.02214076e23, -1.602176634e-19),
		New(math.Copysign(0, -1), math.Copysign(0, -1)),
		New(math.NaN(), math.Inf(1)),
	}

	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			got, err := Parse(v.String())
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", v.String(), err)
			}
			if !got.Equal(v) {
				t.Errorf("round trip of %v gave %v", v, got)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("(1.0 + 1.0i)"); !got.Equal(New(1, 1)) {
		t.Errorf("MustParse() = %v", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse(\"invalid\") expected panic")
		}
	}()
	MustParse("invalid")
}
