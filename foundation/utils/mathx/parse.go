// File: parse.go
// Title: Number Parsing and Grouping
// Description: Parses numbers written with digit separators and renders
//              numbers with thousands separators for tabular display.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package mathx

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseNumber parses s as a float64. Underscores and commas between digits
// are ignored, so "1_234_567" and "1,234,567" are accepted.
func ParseNumber(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.NewReplacer("_", "", ",", "").Replace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty number string")
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", s)
	}
	return n, nil
}

// FormatGrouped renders n with comma thousands separators in the integer
// part, keeping the shortest exact fractional part: 1234567.5 -> "1,234,567.5".
func FormatGrouped(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return formatSpecial(n)
	}
	return humanize.Commaf(n)
}
