// ============================================================================
// humanfmt - Human-readable timestamp and number formatting
// ============================================================================
//
// Package:     report
// Description: Comparison table of compact numbers and their differences
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/msto63/humanfmt/foundation/utils/mathx"
)

// Headers are the column titles of the comparison table
var Headers = []string{"X1", "X2", "X1 Formatted", "X2 Formatted", "Difference", "Description"}

// Row is a Pair with every column rendered
type Row struct {
	X1          string
	X2          string
	X1Formatted string
	X2Formatted string
	Difference  string
	Description string
}

// Cells returns the row in column order
func (r Row) Cells() []string {
	return []string{r.X1, r.X2, r.X1Formatted, r.X2Formatted, r.Difference, r.Description}
}

// BuildRow renders one pair
func BuildRow(p Pair) Row {
	x1Formatted, _ := mathx.FormatNumber(p.X1)
	x2Formatted, _ := mathx.FormatNumber(p.X2)

	return Row{
		X1:          mathx.FormatGrouped(p.X1),
		X2:          mathx.FormatGrouped(p.X2),
		X1Formatted: x1Formatted,
		X2Formatted: x2Formatted,
		Difference:  mathx.FormatDifference(p.X1, p.X2),
		Description: p.Description,
	}
}

// BuildRows renders every pair in order
func BuildRows(pairs []Pair) []Row {
	rows := make([]Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, BuildRow(p))
	}
	return rows
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	numberStyle = cellStyle.
			Align(lipgloss.Right)

	differenceStyle = numberStyle.
			Foreground(lipgloss.Color("#F59E0B"))
)

// borderFor maps a table style name to its border; unknown names are rounded
func borderFor(style string) lipgloss.Border {
	switch style {
	case "normal":
		return lipgloss.NormalBorder()
	case "ascii":
		return lipgloss.ASCIIBorder()
	case "markdown":
		return lipgloss.MarkdownBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// Render draws rows as a comparison table with the named border style
func Render(rows []Row, style string) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cells())
	}

	return renderTable(Headers, cells, style, func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == 4:
			return differenceStyle
		case col < 4:
			return numberStyle
		default:
			return cellStyle
		}
	})
}

// RenderList draws plain text rows under headers with the named border style
func RenderList(headers []string, rows [][]string, style string) string {
	return renderTable(headers, rows, style, func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})
}

func renderTable(headers []string, rows [][]string, style string, styleFunc table.StyleFunc) string {
	t := table.New().
		Border(borderFor(style)).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))).
		Headers(headers...).
		StyleFunc(styleFunc)

	if style == "markdown" {
		t = t.BorderTop(false).BorderBottom(false)
	}

	for _, r := range rows {
		t = t.Row(r...)
	}

	return t.String()
}
