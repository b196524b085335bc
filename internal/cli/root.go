// Package cli provides the command-line interface for intellisql.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MalleGowthami/IntelliSQL/internal/agent"
	"github.com/MalleGowthami/IntelliSQL/internal/config"
	"github.com/MalleGowthami/IntelliSQL/internal/db"
	"github.com/MalleGowthami/IntelliSQL/internal/history"
	"github.com/MalleGowthami/IntelliSQL/internal/llm"
	"github.com/MalleGowthami/IntelliSQL/internal/metrics"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global config and services
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
	store      *db.Store
	convLog    = history.NewLog()
	collector  = metrics.NewCollector()

	// Lazy-initialized LLM model
	model *llm.Model
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "intellisql",
	Short: "Ask a database questions in plain English",
	Long: `IntelliSQL answers natural-language questions about a sample company
database. A language model translates each question into a single SELECT
statement, the statement runs against an embedded SQLite database, and a
second model call summarizes the results in plain English.

The sample database (departments, employees, projects, salaries, project
assignments) is created and seeded automatically on first use.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger, logCleanup = config.SetupLogger(cfg.LogFile, level)

		store = db.NewStore(cfg.DBPath, logger)
		if err := store.EnsureDatabase(cmd.Context()); err != nil {
			return fmt.Errorf("ensure database: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// getAgent creates the pipeline agent with lazy LLM initialization.
// Commands that never call the model (schema, seed) skip the credential
// check entirely.
func getAgent(ctx context.Context) (*agent.Agent, error) {
	if model == nil {
		var err error
		model, err = llm.New(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("init model: %w", err)
		}
	}
	return agent.New(model, store, convLog, collector, logger), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(chatCmd)
}
