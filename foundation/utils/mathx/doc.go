// Package mathx formats numbers for compact human-readable display.
//
// Package: mathx
// Title: Magnitude Formatting
// Description: Scales numbers into K/M/B notation with two decimal places and
//              renders differences at the scale of the larger operand.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Overview
//
// FormatNumber picks the largest of Billion (1e9, "B"), Million (1e6, "M") and
// Thousand (1e3, "K") not exceeding |n| and renders n/threshold with two
// decimals. Numbers below 1000 render with two decimals and no suffix.
//
//	s, m := mathx.FormatNumber(1234567890) // "1.23B", mathx.Billion
//	s, m = mathx.FormatNumber(-500)        // "-500.00", mathx.None
//
// FormatDifference renders a-b at the magnitude of max(|a|, |b|), so a small
// difference between two large numbers stays in the large scale:
//
//	mathx.FormatDifference(1234567890, 1234000000) // "0.00B"
//	mathx.FormatDifference(100, 50)                 // "50.00"
//
// Every float64 has an output: NaN and the infinities render as "NaN", "Inf"
// and "-Inf" with no suffix.
package mathx
