// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used by the logger to pick a log level for
//              an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with severity levels

package error

import "strings"

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers bad user input such as an unparsable operand
	SeverityLow Severity = iota

	// SeverityMedium is the default for wrapped foreign errors
	SeverityMedium

	// SeverityHigh covers storage and configuration failures
	SeverityHigh

	// SeverityCritical means the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string into a Severity, defaulting to medium
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow
	case "high":
		return SeverityHigh
	case "critical":
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
