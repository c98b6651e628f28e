// ABOUTME: CLI command for importing CSV export files.
// ABOUTME: Parses each file independently; --commit consolidates and persists.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/pulse/internal/ingest"
	"github.com/spf13/cobra"
)

var importCommit bool

var importCmd = &cobra.Command{
	Use:     "import <file>...",
	Aliases: []string{"i"},
	Short:   "Import CSV export files",
	Long: `Parse one or more CSV export files and optionally commit the results.

Each file is parsed independently: a malformed file fails on its own and
does not affect the rest of the batch. Nothing is written to the record
store until --commit, so you can preview a batch, drop a bad file, and
re-run.

The file's category (recovery, sleep, workout, daily, journal, strength)
is detected from its header row. Header names are matched against the
alias table; every successful match is remembered, so renamed columns in
a future export format revision still resolve.

EXAMPLES:

  pulse import whoop_recovery.csv            # Preview a single file
  pulse import sleep.csv workouts.csv        # Preview a batch
  pulse import *.csv --commit                # Parse everything and save`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		var results []*ingest.ParsedFile
		failed := 0
		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			result := ingest.ParseFile(path, string(raw), resolver)
			results = append(results, result)

			if !result.OK() {
				failed++
				color.Red("✗ %s", path)
				fmt.Printf("  %s\n", result.Error)
				continue
			}

			color.Green("✓ %s", path)
			fmt.Printf("  %s %d records %s\n",
				padRight(string(result.Category), 10),
				result.Records.Len(),
				faint.Sprintf("(%d rows, %d skipped)", result.RowsProcessed, result.RowsSkipped))
		}

		if !importCommit {
			fmt.Println()
			faint.Println("Dry run — nothing committed. Re-run with --commit to save.")
			return nil
		}

		ds := ingest.Consolidate(results)
		if ds.Len() == 0 {
			return fmt.Errorf("nothing to commit: no file parsed successfully")
		}

		committed, err := repo.CommitSet(&ds.RecordSet, commitSource(args))
		if err != nil {
			return fmt.Errorf("failed to commit records: %w", err)
		}

		fmt.Println()
		color.Green("✓ Committed %d records from %d file(s)", committed, ds.Files)
		if failed > 0 {
			color.Yellow("  %d file(s) failed and were not included", failed)
		}
		return nil
	},
}

// commitSource labels a commit with its origin files.
func commitSource(paths []string) string {
	if len(paths) == 1 {
		return paths[0]
	}
	return fmt.Sprintf("%s (+%d more)", paths[0], len(paths)-1)
}

func init() {
	importCmd.Flags().BoolVar(&importCommit, "commit", false, "consolidate and write records to the store")
	rootCmd.AddCommand(importCmd)
}
