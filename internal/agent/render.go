package agent

import (
	"fmt"
	"strings"
)

// maxRenderedRows bounds the size of the answer prompt: at most this many
// rows are rendered verbatim, with a trailing note counting the rest.
const maxRenderedRows = 50

// renderRows formats result rows for the answer prompt. An empty result
// set renders as an explicit marker rather than an empty block.
func renderRows(rows [][]any) string {
	if len(rows) == 0 {
		return "No results found."
	}

	limit := len(rows)
	if limit > maxRenderedRows {
		limit = maxRenderedRows
	}

	lines := make([]string, 0, limit+1)
	for _, row := range rows[:limit] {
		lines = append(lines, renderRow(row))
	}
	if len(rows) > maxRenderedRows {
		lines = append(lines, fmt.Sprintf("... and %d more rows", len(rows)-maxRenderedRows))
	}
	return strings.Join(lines, "\n")
}

// renderRow formats a single row tuple, e.g. (1, 'Aarav', 85000).
func renderRow(row []any) string {
	fields := make([]string, len(row))
	for i, v := range row {
		switch val := v.(type) {
		case nil:
			fields[i] = "NULL"
		case string:
			fields[i] = fmt.Sprintf("'%s'", val)
		default:
			fields[i] = fmt.Sprintf("%v", val)
		}
	}
	return "(" + strings.Join(fields, ", ") + ")"
}

// stripFences removes markdown code-fence delimiter lines the model may
// wrap its output in despite instructions, rejoining the remainder.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
