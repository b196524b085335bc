package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the live database schema",
	Long: `Print the introspected schema of the sample database: every user
table with its columns, types, and constraints. The listing is rebuilt
from the live database on every call.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := store.DescribeSchema(cmd.Context())
		if err != nil {
			return fmt.Errorf("describe schema: %w", err)
		}
		fmt.Println(schema.Render())
		return nil
	},
}
