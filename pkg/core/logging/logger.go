// ============================================================================
// humanfmt - Human-readable timestamp and number formatting
// ============================================================================
//
// Package:     logging
// Description: Key-value logging facade over the foundation logger
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	hflog "github.com/msto63/humanfmt/foundation/core/log"
)

// Logger wraps the foundation logger with a key-value call style
type Logger struct {
	*hflog.Logger
	name string
}

// New creates a component logger with the default configuration
func New(name string) *Logger {
	return &Logger{
		Logger: NewSimpleLogger(name),
		name:   name,
	}
}

// Wrap adapts an existing foundation logger, naming it after the component
func Wrap(base *hflog.Logger, name string) *Logger {
	if base == nil {
		base = hflog.Discard()
	}
	return &Logger{
		Logger: base.WithName(name),
		name:   name,
	}
}

// Name returns the component name
func (l *Logger) Name() string {
	return l.name
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to hflog.Fields; a trailing key without
// a value and non-string keys are dropped
func toFields(keysAndValues ...interface{}) hflog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(hflog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
