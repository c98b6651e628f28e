// ABOUTME: CLI command for listing committed records.
// ABOUTME: Supports filtering by category and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/pulse/internal/models"
	"github.com/harperreed/pulse/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listCategory string
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List committed records",
	Long: `List recent committed records from the local store.

OUTPUT FORMAT:

  Each line shows: ID  DATE  CATEGORY  SUMMARY

  The ID is an 8-character prefix you can use with 'pulse delete'.

FILTERING:

  Use --category to filter:
    recovery, sleep, workout, daily, journal, strength

EXAMPLES:

  pulse list                        # Show last 20 records (all categories)
  pulse list --category recovery    # Show only recovery records
  pulse list -c sleep -n 50         # Show last 50 sleep records`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var category *models.Category
		if listCategory != "" {
			if !models.IsValidCategory(listCategory) {
				return fmt.Errorf("unknown category: %s", listCategory)
			}
			c := models.Category(listCategory)
			category = &c
		}

		records, err := repo.ListRecords(category, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No records found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(r.ID.String()[:8]),
				padRight(r.Date, 19),
				padRight(string(r.Category), 10),
				summarize(r))
		}

		return nil
	},
}

// summarize picks the most informative fields per category for one line.
func summarize(r *storage.StoredRecord) string {
	switch r.Category {
	case models.CategoryRecovery:
		return fmt.Sprintf("recovery %.0f hrv %.0fms rhr %.0f",
			num(r, "recovery_score"), num(r, "hrv_rmssd"), num(r, "resting_heart_rate"))
	case models.CategorySleep:
		return fmt.Sprintf("asleep %s efficiency %.0f%% score %.0f",
			fmtDuration(num(r, "total_sleep_ms")), num(r, "sleep_efficiency"), num(r, "sleep_score"))
	case models.CategoryWorkout:
		return fmt.Sprintf("%s strain %.1f %s",
			str(r, "workout_type"), num(r, "strain_score"), fmtDuration(num(r, "duration_ms")))
	case models.CategoryDaily:
		return fmt.Sprintf("%.0f steps %.0f cal", num(r, "steps"), num(r, "calories_burned"))
	case models.CategoryJournal:
		return truncate(str(r, "question_text"), 40)
	case models.CategoryStrength:
		return fmt.Sprintf("%s %gx%gx%g vol %.0f",
			str(r, "exercise"), num(r, "weight"), num(r, "reps"), num(r, "sets"), num(r, "volume"))
	}
	return ""
}

func num(r *storage.StoredRecord, field string) float64 {
	if v, ok := r.Fields[field].(float64); ok {
		return v
	}
	return 0
}

func str(r *storage.StoredRecord, field string) string {
	if v, ok := r.Fields[field].(string); ok {
		return v
	}
	return ""
}

// fmtDuration renders milliseconds as h:mm.
func fmtDuration(ms float64) string {
	totalMin := int(ms / 60000)
	return fmt.Sprintf("%d:%02d", totalMin/60, totalMin%60)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by record category")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
