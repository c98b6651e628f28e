// ABOUTME: Typed record variants for parsed health export data.
// ABOUTME: Defines the Category enum and one struct per export schema.
package models

// Category identifies which export schema a file (and its records) belongs to.
type Category string

const (
	CategoryRecovery Category = "recovery"
	CategorySleep    Category = "sleep"
	CategoryWorkout  Category = "workout"
	CategoryDaily    Category = "daily"
	CategoryJournal  Category = "journal"
	CategoryStrength Category = "strength"

	// CategoryUnknown means the header row matched no known schema.
	CategoryUnknown Category = "unknown"
)

// AllCategories returns every parseable category, in classification
// priority order.
var AllCategories = []Category{
	CategoryRecovery, CategorySleep, CategoryStrength,
	CategoryWorkout, CategoryDaily, CategoryJournal,
}

// IsValidCategory checks if a string is a known record category.
func IsValidCategory(s string) bool {
	for _, c := range AllCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// RecoveryRecord is one day of readiness data (WHOOP physiological cycle).
type RecoveryRecord struct {
	Date             string  `json:"date" yaml:"date"`
	RecoveryScore    float64 `json:"recovery_score" yaml:"recovery_score"`         // 0-100
	HRV              float64 `json:"hrv_rmssd" yaml:"hrv_rmssd"`                   // ms
	RestingHeartRate float64 `json:"resting_heart_rate" yaml:"resting_heart_rate"` // bpm
	SkinTemp         float64 `json:"skin_temp" yaml:"skin_temp"`                   // celsius
}

// SleepRecord is one night of sleep stage data. Stage durations are in
// milliseconds; scores are 0-100.
type SleepRecord struct {
	Date         string  `json:"date" yaml:"date"`
	TotalSleepMS int64   `json:"total_sleep_ms" yaml:"total_sleep_ms"`
	Efficiency   float64 `json:"sleep_efficiency" yaml:"sleep_efficiency"`
	SlowWaveMS   int64   `json:"slow_wave_ms" yaml:"slow_wave_ms"`
	REMMS        int64   `json:"rem_ms" yaml:"rem_ms"`
	LightMS      int64   `json:"light_ms" yaml:"light_ms"`
	AwakeMS      int64   `json:"awake_ms" yaml:"awake_ms"`
	SleepScore   float64 `json:"sleep_score" yaml:"sleep_score"`
}

// WorkoutRecord is a single logged activity session.
type WorkoutRecord struct {
	Date         string  `json:"date" yaml:"date"`
	Strain       float64 `json:"strain_score" yaml:"strain_score"`
	Energy       float64 `json:"energy" yaml:"energy"` // kJ or cal, as exported
	AvgHeartRate float64 `json:"avg_heart_rate" yaml:"avg_heart_rate"`
	MaxHeartRate float64 `json:"max_heart_rate" yaml:"max_heart_rate"`
	DurationMS   int64   `json:"duration_ms" yaml:"duration_ms"`
	WorkoutType  string  `json:"workout_type" yaml:"workout_type"`
}

// DailyActivityRecord is one day of ambient activity totals.
type DailyActivityRecord struct {
	Date           string  `json:"date" yaml:"date"`
	Steps          int     `json:"steps" yaml:"steps"`
	CaloriesBurned float64 `json:"calories_burned" yaml:"calories_burned"`
	AmbientTemp    float64 `json:"ambient_temp" yaml:"ambient_temp"` // celsius
}

// JournalRecord is one answered journal prompt.
type JournalRecord struct {
	Date        string `json:"date" yaml:"date"`
	Question    string `json:"question_text" yaml:"question_text"`
	AnsweredYes bool   `json:"answered_yes" yaml:"answered_yes"`
	Notes       string `json:"notes" yaml:"notes"`
}

// StrengthRecord is one exercise entry from a strength-training log
// (StrongLifts style: one row per exercise per session).
type StrengthRecord struct {
	Date       string  `json:"date" yaml:"date"`
	Exercise   string  `json:"exercise" yaml:"exercise"`
	Weight     float64 `json:"weight" yaml:"weight"`
	Reps       int     `json:"reps" yaml:"reps"`
	Sets       int     `json:"sets" yaml:"sets"`
	Volume     float64 `json:"volume" yaml:"volume"` // weight*reps*sets when not exported
	OneRepMax  float64 `json:"one_rep_max,omitempty" yaml:"one_rep_max,omitempty"`
	DurationMS int64   `json:"workout_duration_ms,omitempty" yaml:"workout_duration_ms,omitempty"`
}
