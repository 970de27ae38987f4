// File: parse.go
// Title: Complex Number Parsing
// Description: Parses the canonical "(re + imi)" text form produced by
//              Complex.String and the short "re,im" pair form.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package complexx

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/complexkit/foundation/core/error"
)

// Parse converts s to a Complex. Accepted forms:
//
//	(3.0 + 4.0i)
//	(-1.5 + -2.0E-5i)
//	3,4
func Parse(s string) (Complex, error) {
	trimmed := strings.TrimSpace(s)

	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		inner := trimmed[1 : len(trimmed)-1]
		if !strings.HasSuffix(inner, "i") {
			return Complex{}, invalidFormat(s, "missing imaginary unit")
		}
		re, im, ok := strings.Cut(strings.TrimSuffix(inner, "i"), " + ")
		if !ok {
			return Complex{}, invalidFormat(s, "missing ' + ' separator")
		}
		return parseParts(s, re, im)
	}

	if re, im, ok := strings.Cut(trimmed, ","); ok {
		return parseParts(s, re, im)
	}

	return Complex{}, invalidFormat(s, "expected (re + imi) or re,im")
}

// MustParse is like Parse but panics on invalid input.
// Use it for constants known to be valid.
func MustParse(s string) Complex {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseParts(input, reText, imText string) (Complex, error) {
	re, err := parseFloat(reText)
	if err != nil {
		return Complex{}, invalidFormat(input, fmt.Sprintf("bad real part %q", strings.TrimSpace(reText)))
	}
	im, err := parseFloat(imText)
	if err != nil {
		return Complex{}, invalidFormat(input, fmt.Sprintf("bad imaginary part %q", strings.TrimSpace(imText)))
	}
	return New(re, im), nil
}

func invalidFormat(input, reason string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid complex number %q: %s", input, reason)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithSeverity(mdwerror.SeverityLow).
		WithOperation("complexx.Parse").
		WithDetail("input", input)
}
