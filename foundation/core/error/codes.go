// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across humanfmt. Codes classify
//              failures for callers and drive CLI exit statuses.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set for conversion, input and config errors

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Input and conversion
	CodeInvalidInput   Code = "INVALID_INPUT"
	CodeInvalidFormat  Code = "INVALID_FORMAT"
	CodeTimestampParse Code = "TIMESTAMP_PARSE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeInvalidInput, CodeInvalidFormat, CodeTimestampParse,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeTimestampParse:
		return "input"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
// Input problems exit with 2, configuration problems with 3, everything else with 1.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
