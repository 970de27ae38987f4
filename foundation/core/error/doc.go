// Package error provides structured error handling for complexkit.
//
// Package: error
// Title: Structured Error Type
// Description: A small error framework carrying a code, a severity, the
//              failing operation and free-form details. Every supporting
//              package (parsing, configuration, history, CLI) reports its
//              failures through this type so callers and the logger can
//              branch on codes instead of message text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with codes, severities and wrapping
//
// Usage:
//
//	import mdwerror "github.com/msto63/complexkit/foundation/core/error"
//
//	err := mdwerror.New("unknown operation").
//	  WithCode(mdwerror.CodeInvalidOperation).
//	  WithOperation("calc.Apply").
//	  WithDetail("op", "pow")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidOperation) {
//	  // handle
//	}
//
// Complex arithmetic itself never produces errors; NaN and Infinity are
// ordinary results.
package error
