// ============================================================================
// humanfmt - Human-readable timestamp and number formatting
// ============================================================================
//
// Package:     version
// Description: Central version management for the humanfmt binary
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the humanfmt components
const (
	// Application version
	Application = "0.1.0"

	// Component versions
	Timex      = "0.1.0"
	Mathx      = "0.1.0"
	Playground = "0.1.0"
)

// Set at build time with -ldflags "-X github.com/msto63/humanfmt/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "timex":
		return Timex
	case "mathx":
		return Mathx
	case "playground":
		return Playground
	default:
		return Application
	}
}

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("humanfmt %s (commit %s, built %s, %s %s/%s)",
		Application, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
