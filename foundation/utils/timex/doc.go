// Package timex converts ISO-8601 timestamps into human-readable template formats.
//
// Package: timex
// Title: Timestamp Template Conversion
// Description: Translates templates built from the tokens YYYY, MM, DD, HH, MI,
//              SS, offset, TZ, Z and nnnnnnnnn into formatting plans and applies
//              them to parsed timestamps. Named formats (epoch_ms, epoch_sec and
//              caller-registered ones) bypass the template language.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Package Overview:
//
// # Templates
//
// A template is plain text containing tokens. Tokens are replaced in a fixed
// order so that no earlier replacement can corrupt a later token:
//
//	YYYY   4-digit year            %Y
//	MM     2-digit month           %m
//	DD     2-digit day             %d
//	HH     2-digit hour (24h)      %H
//	MI     2-digit minute          %M
//	SS     2-digit second          %S
//	offset UTC offset, no colon    %z   (-0800)
//	TZ     zone abbreviation       %Z   (UTC, UTC-08:00)
//
// Two tokens are handled outside the table. nnnnnnnnn is replaced by the
// fractional second as nine digits. The instant only carries microsecond
// precision, so the last three digits are always zero. A Z that is not part of
// TZ converts the instant to UTC and appends a literal Z to the output.
//
// Any other text, including unknown tokens, is copied to the output unchanged.
//
// Plan.Pattern is rendered with github.com/lestrrat-go/strftime. %N is a
// custom specification for the fractional second, and naive instants use a
// second formatter whose %z and %Z print nothing.
//
// # Parsing
//
// ParseTimestamp accepts ISO-8601 date-times separated by T or a space, with
// optional fractional seconds and an optional offset (Z, +hh:mm or +hhmm), as
// well as bare dates. Timestamps without an offset are naive: they are read in
// the converter's location (UTC unless configured) and render empty offset and
// zone directives.
//
// # Usage
//
//	out, err := timex.ConvertTimestampFormat("2025-11-01T00:00:00-08:00", "YYYY-MM-DDTHH:MI:SS.nnnnnnnnnZ")
//	// out == "2025-11-01T08:00:00.000000000Z"
//
//	conv := timex.NewConverter(
//		timex.WithPreset("iso_offset", "YYYY-MM-DDTHH:MI:SSoffset"),
//		timex.WithLocation(berlin),
//	)
//	out, err = conv.Convert("2025-11-01 09:30", "iso_offset")
//
// Errors returned by the conversion functions are foundation errors carrying
// the TIMESTAMP_PARSE code; the underlying *ParseError can be reached with
// errors.As.
package timex
