// ============================================================================
// humanfmt - Human-readable timestamp and number formatting
// ============================================================================
//
// Package:     playground
// Description: Message types for the playground TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package playground

import (
	"github.com/msto63/humanfmt/foundation/utils/timex"
)

// configChangedMsg is sent when the watched config file was written
type configChangedMsg struct{}

// configReloadedMsg is sent once a changed config file has been reloaded
type configReloadedMsg struct {
	converter *timex.Converter
	err       error
}
