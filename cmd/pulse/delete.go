// ABOUTME: CLI command for deleting committed records.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a committed record",
	Long: `Delete a committed record by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'pulse list' output.

EXAMPLES:

  pulse delete abc12345                    # Delete by 8-char prefix
  pulse rm abc1                            # Short prefix (if unique)

CAUTION:

  This permanently deletes the record. There is no undo.
  If the prefix matches multiple records, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// First, fetch the record to show what we're deleting
		record, err := repo.GetRecord(idOrPrefix)
		if err != nil {
			return fmt.Errorf("record not found: %s", idOrPrefix)
		}

		if err := repo.DeleteRecord(idOrPrefix); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		color.Yellow("✗ Deleted %s record", record.Category)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(record.ID.String()[:8]),
			record.Date)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
