// ============================================================================
// complexkit - Complex Number Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information, overridable at link time
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/msto63/complexkit/pkg/core/version.Version=..."
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Short returns "complexkit v<Version>"
func Short() string {
	return "complexkit v" + Version
}

// Info returns the multi-line build description printed by `complexkit version`
func Info() string {
	return fmt.Sprintf("%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		Short(), GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
