package agent

import (
	"fmt"
	"strings"
	"testing"
)

func TestRenderRowsTruncation(t *testing.T) {
	rows := make([][]any, 75)
	for i := range rows {
		rows[i] = []any{int64(i), fmt.Sprintf("name-%d", i)}
	}

	text := renderRows(rows)
	lines := strings.Split(text, "\n")

	// 50 literal rows plus the omission note.
	if len(lines) != maxRenderedRows+1 {
		t.Fatalf("rendered %d lines, want %d", len(lines), maxRenderedRows+1)
	}
	if lines[0] != "(0, 'name-0')" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[maxRenderedRows-1] != "(49, 'name-49')" {
		t.Errorf("last rendered row = %q", lines[maxRenderedRows-1])
	}
	if lines[maxRenderedRows] != "... and 25 more rows" {
		t.Errorf("omission note = %q, want %q", lines[maxRenderedRows], "... and 25 more rows")
	}
}

func TestRenderRowsExactLimitHasNoNote(t *testing.T) {
	rows := make([][]any, maxRenderedRows)
	for i := range rows {
		rows[i] = []any{int64(i)}
	}

	text := renderRows(rows)
	if strings.Contains(text, "more rows") {
		t.Errorf("no omission note expected at exactly %d rows:\n%s", maxRenderedRows, text)
	}
	if got := len(strings.Split(text, "\n")); got != maxRenderedRows {
		t.Errorf("rendered %d lines, want %d", got, maxRenderedRows)
	}
}

func TestRenderRowsEmptySet(t *testing.T) {
	if got := renderRows(nil); got != "No results found." {
		t.Errorf("renderRows(nil) = %q, want explicit no-results marker", got)
	}
}

func TestRenderRowValues(t *testing.T) {
	got := renderRow([]any{int64(1), "Aarav", 85000.0, nil})
	want := "(1, 'Aarav', 85000, NULL)"
	if got != want {
		t.Errorf("renderRow() = %q, want %q", got, want)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", "SELECT 1;", "SELECT 1;"},
		{"surrounding whitespace", "  SELECT 1;\n", "SELECT 1;"},
		{
			"plain fences",
			"```\nSELECT * FROM employees;\n```",
			"SELECT * FROM employees;",
		},
		{
			"language tag",
			"```sql\nSELECT * FROM employees;\n```",
			"SELECT * FROM employees;",
		},
		{
			"multi-line statement",
			"```sql\nSELECT e.first_name\nFROM employees e;\n```",
			"SELECT e.first_name\nFROM employees e;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
