// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used to classify failures of the supporting
//              packages. Codes are stable strings so they can be logged and
//              compared without depending on message text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Calculation
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsClientError reports whether the code describes bad caller input
// rather than a failure of the program or its environment.
func (c Code) IsClientError() bool {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeInvalidOperation, CodeNotFound, CodeInvalidConfig:
		return true
	default:
		return false
	}
}
