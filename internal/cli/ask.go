package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MalleGowthami/IntelliSQL/internal/metrics"
	"github.com/MalleGowthami/IntelliSQL/internal/models"
)

var askShowTimings bool

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and print SQL, results, and the answer",
	Long: `Ask a natural-language question about the sample database.

Prints the generated SQL statement, the query results, and a plain-English
answer. On failure the diagnostic message is shown verbatim.

Examples:
  intellisql ask "Show me all employees in the Engineering department"
  intellisql ask "Who is assigned to the AI Chatbot project?"
  intellisql ask "What is the average salary by department?"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowTimings, "timings", false, "print per-stage timings")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ag, err := getAgent(cmd.Context())
	if err != nil {
		return err
	}

	record := ag.Ask(cmd.Context(), args[0])
	printRecord(record)

	if askShowTimings {
		printTimings(collector.Snapshot())
	}

	if record.Failed() {
		os.Exit(1)
	}
	return nil
}

// styled reports whether stdout is a terminal; piped output stays plain.
func styled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF005F"))
)

func heading(s string) string {
	if styled() {
		return headingStyle.Render(s)
	}
	return s
}

func printRecord(record models.AnswerRecord) {
	if record.Statement != "" {
		fmt.Println(heading("SQL"))
		fmt.Println(record.Statement)
		fmt.Println()
	}

	if record.Columns != nil {
		fmt.Println(heading(fmt.Sprintf("Results (%d rows)", len(record.Rows))))
		printTable(record.Columns, record.Rows)
		fmt.Println()
	}

	if record.Failed() {
		msg := "Error: " + record.Err
		if styled() {
			msg = errorStyle.Render(msg)
		}
		fmt.Println(msg)
		return
	}

	fmt.Println(heading("Answer"))
	fmt.Println(record.Answer)
}

func printTable(columns []string, rows [][]any) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))

	for _, row := range rows {
		fields := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				fields[i] = "NULL"
			} else {
				fields[i] = fmt.Sprintf("%v", v)
			}
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
	w.Flush()
}

func printTimings(snap metrics.Snapshot) {
	fmt.Println()
	fmt.Println(heading("Timings"))
	for _, op := range []struct {
		name string
		s    *metrics.OperationSnapshot
	}{
		{"translate", snap.Translate},
		{"execute", snap.Execute},
		{"synthesize", snap.Synthesize},
		{"pipeline", snap.Pipeline},
	} {
		if op.s == nil {
			continue
		}
		fmt.Printf("  %-10s %6dms\n", op.name, op.s.TotalTimeMs)
	}
}
