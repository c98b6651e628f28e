// ABOUTME: CLI commands for inspecting and pruning the learned alias tier.
// ABOUTME: Static aliases are compiled in; learned ones come from the store.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/pulse/internal/alias"
	"github.com/harperreed/pulse/internal/models"
	"github.com/spf13/cobra"
)

var aliasesStatic bool

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Show learned header aliases",
	Long: `Show the header aliases used to resolve export columns.

Every time an unfamiliar header resolves successfully against a field, it
joins the learned tier and is preferred on future imports. Use --static to
also show the compiled-in defaults.

EXAMPLES:

  pulse aliases                    # Learned aliases only
  pulse aliases --static           # Include built-in defaults
  pulse aliases forget sleep       # Drop everything learned for sleep files`,
	RunE: func(cmd *cobra.Command, args []string) error {
		learned, err := aliasStore.All()
		if err != nil {
			return fmt.Errorf("failed to read alias store: %w", err)
		}

		faint := color.New(color.Faint)
		printed := false

		for _, c := range models.AllCategories {
			fields := alias.Fields(c)
			var lines []string
			for _, f := range fields {
				var parts []string
				if aliasesStatic {
					for _, a := range alias.Static(c, f) {
						parts = append(parts, faint.Sprint(a))
					}
				}
				parts = append(parts, learned[c][f]...)
				if len(parts) > 0 {
					lines = append(lines, fmt.Sprintf("  %s %s", padRight(f, 20), strings.Join(parts, ", ")))
				}
			}
			if len(lines) == 0 {
				continue
			}
			printed = true
			color.New(color.Bold).Println(string(c))
			sort.Strings(lines)
			for _, l := range lines {
				fmt.Println(l)
			}
		}

		if !printed {
			fmt.Println("No learned aliases yet. Import some files first.")
		}
		return nil
	},
}

var aliasesForgetCmd = &cobra.Command{
	Use:   "forget <category> [field]",
	Short: "Drop learned aliases",
	Long: `Drop learned aliases for a category, or for one field of it.

The static defaults are compiled in and cannot be forgotten.

EXAMPLES:

  pulse aliases forget sleep             # Everything learned for sleep files
  pulse aliases forget recovery hrv      # Just the hrv field`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidCategory(args[0]) {
			return fmt.Errorf("unknown category: %s", args[0])
		}
		c := models.Category(args[0])

		field := ""
		if len(args) == 2 {
			field = args[1]
		}

		if err := aliasStore.Forget(c, field); err != nil {
			return fmt.Errorf("failed to forget aliases: %w", err)
		}

		if field != "" {
			color.Yellow("✗ Forgot learned aliases for %s.%s", c, field)
		} else {
			color.Yellow("✗ Forgot learned aliases for %s", c)
		}
		return nil
	},
}

func init() {
	aliasesCmd.Flags().BoolVar(&aliasesStatic, "static", false, "include compiled-in default aliases")
	aliasesCmd.AddCommand(aliasesForgetCmd)
	rootCmd.AddCommand(aliasesCmd)
}
