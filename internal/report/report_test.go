package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
)

func TestBuildRows_DefaultPairs(t *testing.T) {
	rows := BuildRows(DefaultPairs())

	if len(rows) != 10 {
		t.Fatalf("BuildRows() returned %d rows, want 10", len(rows))
	}

	expected := []struct {
		x1, x1Formatted, x2Formatted, difference string
	}{
		{"123,654,789,963", "123.65B", "123.65B", "0.00B"},
		{"5,000,000,000", "5.00B", "4.50B", "0.50B"},
		{"1,500,000,000", "1.50B", "1.40B", "0.10B"},
		{"100,000,000", "100.00M", "50.00M", "50.00M"},
		{"100,000", "100.00K", "50.00K", "50.00K"},
		{"1,234,567,890", "1.23B", "1.23B", "0.00B"},
		{"999,999,999", "1000.00M", "888.89M", "111.11M"},
		{"50,000", "50.00K", "30.00K", "20.00K"},
		{"500", "500.00", "100.00", "400.00"},
		{"123,654,789,963", "123.65B", "100.00", "123.65B"},
	}

	for i, want := range expected {
		row := rows[i]
		if row.X1 != want.x1 || row.X1Formatted != want.x1Formatted ||
			row.X2Formatted != want.x2Formatted || row.Difference != want.difference {
			t.Errorf("row %d = %+v, want %+v", i, row, want)
		}
	}
}

func TestRowCells(t *testing.T) {
	row := BuildRow(Pair{X1: 100, X2: 50, Description: "small"})
	cells := row.Cells()

	if len(cells) != len(Headers) {
		t.Fatalf("Cells() has %d columns, want %d", len(cells), len(Headers))
	}
	if cells[4] != "50.00" || cells[5] != "small" {
		t.Errorf("Cells() = %v", cells)
	}
}

func TestRender(t *testing.T) {
	rows := BuildRows(DefaultPairs()[:2])

	styles := []struct {
		style  string
		corner string
	}{
		{"rounded", "╭"},
		{"normal", "┌"},
		{"ascii", "+"},
		{"markdown", "|"},
		{"unknown", "╭"},
	}

	for _, tt := range styles {
		t.Run(tt.style, func(t *testing.T) {
			out := Render(rows, tt.style)

			for _, want := range append(Headers, "0.50B", "Both Billions - 500M difference") {
				if !strings.Contains(out, want) {
					t.Errorf("Render(%s) missing %q:\n%s", tt.style, want, out)
				}
			}
			if !strings.HasPrefix(strings.TrimSpace(out), tt.corner) {
				t.Errorf("Render(%s) should start with %q:\n%s", tt.style, tt.corner, out)
			}
		})
	}
}

func writePairs(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write pairs file: %v", err)
	}
	return path
}

func TestLoadPairs(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "pairs.toml",
			content: `
[[pairs]]
x1 = 1500
x2 = 500
description = "thousands"

[[pairs]]
x1 = 2e9
x2 = 1e9
description = "billions"
`,
		},
		{
			name: "yaml mapping",
			file: "pairs.yaml",
			content: `
pairs:
  - x1: 1500
    x2: 500
    description: thousands
  - x1: 2000000000
    x2: 1000000000
    description: billions
`,
		},
		{
			name: "yaml sequence",
			file: "pairs.yml",
			content: `
- {x1: 1500, x2: 500, description: thousands}
- {x1: 2000000000, x2: 1000000000, description: billions}
`,
		},
		{
			name:    "json",
			file:    "pairs.json",
			content: `{"pairs": [{"x1": 1500, "x2": 500, "description": "thousands"}, {"x1": 2e9, "x2": 1e9, "description": "billions"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := LoadPairs(writePairs(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadPairs() error = %v", err)
			}
			if len(pairs) != 2 {
				t.Fatalf("LoadPairs() returned %d pairs, want 2", len(pairs))
			}
			if pairs[0] != (Pair{X1: 1500, X2: 500, Description: "thousands"}) {
				t.Errorf("pairs[0] = %+v", pairs[0])
			}
			if pairs[1].X1 != 2e9 || pairs[1].Description != "billions" {
				t.Errorf("pairs[1] = %+v", pairs[1])
			}
		})
	}
}

func TestLoadPairsErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code hferror.Code
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") }, hferror.CodeMissingConfig},
		{"empty", func(t *testing.T) string { return writePairs(t, "empty.yaml", "") }, hferror.CodeInvalidInput},
		{"broken toml", func(t *testing.T) string { return writePairs(t, "bad.toml", "[[pairs]\nx1 =") }, hferror.CodeInvalidInput},
		{"wrong type", func(t *testing.T) string { return writePairs(t, "bad.yaml", "pairs:\n  - x1: lots\n") }, hferror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPairs(tt.path(t))
			if !hferror.HasCode(err, tt.code) {
				t.Errorf("LoadPairs() code = %v, want %v (err: %v)", hferror.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestRenderList(t *testing.T) {
	out := RenderList([]string{"Name", "Template"}, [][]string{
		{"date", "YYYY-MM-DD"},
		{"time", "HH:MI:SS"},
	}, "ascii")

	for _, want := range []string{"Name", "Template", "date", "YYYY-MM-DD", "HH:MI:SS"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderList() missing %q:\n%s", want, out)
		}
	}
}
