// Package error provides the structured error type shared by the humanfmt
// foundation packages and the humanfmt command line.
//
// Package: error
// Title: humanfmt Error Handling
// Description: Coded errors with severity, details and cause chains. Foundation
//              packages return these so callers can branch on a Code instead of
//              matching message text, and the CLI maps codes to exit statuses.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with codes, severity and wrapping
//
// Usage:
//
//	import hferror "github.com/msto63/humanfmt/foundation/core/error"
//
//	err := hferror.New("template must not be empty").
//		WithCode(hferror.CodeInvalidInput).
//		WithDetail("flag", "--format")
//
//	wrapped := hferror.Wrap(parseErr, "error converting timestamp").
//		WithCode(hferror.CodeTimestampParse).
//		WithDetail("timestamp", raw)
//
//	if hferror.HasCode(wrapped, hferror.CodeTimestampParse) {
//		// input was not an ISO-8601 timestamp
//	}
package error
