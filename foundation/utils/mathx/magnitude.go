// File: magnitude.go
// Title: Magnitude Formatting
// Description: Implements the K/M/B magnitude classes and the number and
//              difference formatters built on them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package mathx

import (
	"math"
	"strconv"
)

// Magnitude is a display scale: values are divided by Threshold and suffixed
type Magnitude struct {
	Threshold float64
	Suffix    string
}

// Magnitude classes
var (
	None     = Magnitude{Threshold: 1, Suffix: ""}
	Thousand = Magnitude{Threshold: 1e3, Suffix: "K"}
	Million  = Magnitude{Threshold: 1e6, Suffix: "M"}
	Billion  = Magnitude{Threshold: 1e9, Suffix: "B"}
)

// magnitudes is ordered from largest to smallest threshold
var magnitudes = []Magnitude{Billion, Million, Thousand}

// Precision is the number of fractional digits in every rendered value
const Precision = 2

// IsNone reports whether m applies no scaling
func (m Magnitude) IsNone() bool {
	return m.Suffix == ""
}

// Scale renders n divided by the threshold with the suffix appended
func (m Magnitude) Scale(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return formatSpecial(n)
	}
	return strconv.FormatFloat(n/m.Threshold, 'f', Precision, 64) + m.Suffix
}

// String returns the suffix, or "none" for the unscaled class
func (m Magnitude) String() string {
	if m.IsNone() {
		return "none"
	}
	return m.Suffix
}

// MagnitudeFor returns the largest magnitude whose threshold does not exceed |n|
func MagnitudeFor(n float64) Magnitude {
	abs := math.Abs(n)
	if math.IsNaN(abs) || math.IsInf(abs, 0) {
		return None
	}

	for _, m := range magnitudes {
		if abs >= m.Threshold {
			return m
		}
	}
	return None
}

// FormatNumber renders n in compact notation with two decimals
func FormatNumber(n float64) (string, Magnitude) {
	m := MagnitudeFor(n)
	return m.Scale(n), m
}

// FormatDifference renders a-b at the magnitude of the larger operand
func FormatDifference(a, b float64) string {
	m := MagnitudeFor(math.Max(math.Abs(a), math.Abs(b)))
	return m.Scale(a - b)
}

func formatSpecial(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Inf"
	default:
		return "-Inf"
	}
}
