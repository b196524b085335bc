package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create and seed the sample database",
	Long: `Create the sample database file and load the fixture data if it does
not already exist. With --force the database is dropped and recreated
wholesale, discarding any manual changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// EnsureDatabase already ran in the pre-run hook; only --force
		// has more work to do here.
		if seedForce {
			if err := store.Reseed(cmd.Context()); err != nil {
				return fmt.Errorf("reseed: %w", err)
			}
		}
		fmt.Printf("Sample database ready at %s\n", store.Path())
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "drop and recreate the database")
}
