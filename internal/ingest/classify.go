// ABOUTME: Header-driven file classification into record categories.
// ABOUTME: Fixed priority order resolves keyword overlap between schemas.
package ingest

import (
	"strings"

	"github.com/harperreed/pulse/internal/models"
)

var (
	recoveryKeywords = []string{
		"recovery", "hrv", "resting heart rate", "rhr", "readiness",
		"heart rate variability", "skin temp",
	}
	sleepKeywords = []string{
		"sleep", "bed time", "wake time", "rem", "deep sleep", "light sleep",
	}
	strengthKeywords = []string{
		"exercise", "weight", "reps", "sets", "volume", "1rm",
	}
	workoutKeywords = []string{
		"strain", "workout", "activity", "kilojoule", "max heart rate",
		"average heart rate", "calories burned",
	}
	dailyKeywords = []string{
		"steps", "daily", "ambient", "temperature", "day strain", "calories",
	}
	journalKeywords = []string{
		"journal", "question text", "answered yes", "notes",
	}
)

// Classify decides which record category a header row represents.
//
// Keyword sets overlap ("calories" is both workout and daily vocabulary),
// so categories are tested most-specific first. Strength is checked before
// generic workout so StrongLifts exports do not classify as WHOOP workouts.
func Classify(header []string) models.Category {
	joined := strings.ToLower(strings.Join(header, " "))

	switch {
	case containsAny(joined, recoveryKeywords):
		return models.CategoryRecovery
	case containsAny(joined, sleepKeywords):
		return models.CategorySleep
	case containsAny(joined, strengthKeywords),
		strings.Contains(joined, "squat") && strings.Contains(joined, "bench"):
		return models.CategoryStrength
	case containsAny(joined, workoutKeywords):
		return models.CategoryWorkout
	case containsAny(joined, dailyKeywords):
		return models.CategoryDaily
	case containsAny(joined, journalKeywords),
		strings.Contains(joined, "question") && strings.Contains(joined, "answer"):
		return models.CategoryJournal
	}
	return models.CategoryUnknown
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
