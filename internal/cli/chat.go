package cli

import (
	"github.com/spf13/cobra"

	"github.com/MalleGowthami/IntelliSQL/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question-and-answer session",
	Long: `Start an interactive terminal session. Type a question and press
enter; the generated SQL, results, and answer appear in the session
history. Ctrl+L clears the history, Esc or Ctrl+C quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ag, err := getAgent(cmd.Context())
		if err != nil {
			return err
		}
		return tui.Run(cmd.Context(), ag, store, convLog, collector)
	},
}
