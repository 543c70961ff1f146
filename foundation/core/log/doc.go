// Package log provides structured logging for humanfmt.
//
// Package: log
// Title: humanfmt Structured Logging
// Description: Leveled, structured logger with pluggable formatters (JSON, text,
//              console, logfmt). Loggers are immutable values: every With*
//              method returns a configured copy, so a logger can be shared
//              between goroutines and specialised per command.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Output: os.Stderr,
//		Name:   "convert",
//	})
//
//	logger.Debug("translated template", log.String("pattern", plan.Pattern))
//	logger.ErrorWithErr("conversion failed", err, log.String("input", raw))
//
// Errors from foundation/core/error are expanded by LogError into code,
// severity and detail fields, and the level is chosen from the severity.
package log
