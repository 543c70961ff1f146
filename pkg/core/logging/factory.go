// ============================================================================
// humanfmt - Human-readable timestamp and number formatting
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	hflog "github.com/msto63/humanfmt/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Destination (default: stderr, keeping stdout for command output)
	Output io.Writer

	// Correlation ID attached to every entry; empty generates one
	CorrelationID string

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *hflog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	return hflog.NewWithConfig(hflog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.ServiceName,
	}).WithCorrelationID(correlationID)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *hflog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// NewCorrelationID returns a random ID tying together the entries of one invocation
func NewCorrelationID() string {
	return uuid.NewString()
}

// parseLevel converts a string level, falling back to warn
func parseLevel(level string) hflog.Level {
	parsed, err := hflog.ParseLevel(level)
	if err != nil {
		return hflog.LevelWarn
	}
	return parsed
}

// parseFormat converts a string format, falling back to text
func parseFormat(format string) hflog.Format {
	parsed, err := hflog.ParseFormat(format)
	if err != nil {
		return hflog.FormatText
	}
	return parsed
}
