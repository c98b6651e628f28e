// ABOUTME: Row materializer turning tokenized rows into typed records.
// ABOUTME: Coercion never fails a row: bad numbers and durations default to 0.
package ingest

import (
	"strconv"
	"strings"

	"github.com/harperreed/pulse/internal/alias"
	"github.com/harperreed/pulse/internal/models"
)

// rowReader extracts coerced values from one data row using resolved
// column indices. Unmapped fields and short rows read as zero values.
type rowReader struct {
	row  []string
	cols map[string]int
}

func (r rowReader) text(field string) string {
	i, ok := r.cols[field]
	if !ok || i >= len(r.row) {
		return ""
	}
	return r.row[i]
}

func (r rowReader) number(field string) float64 {
	return parseNumber(r.text(field))
}

func (r rowReader) count(field string) int {
	return int(parseNumber(r.text(field)))
}

func (r rowReader) millis(field string) int64 {
	return parseDurationMS(r.text(field))
}

func (r rowReader) flag(field string) bool {
	s := r.text(field)
	return strings.EqualFold(s, "true") || s == "1"
}

// parseNumber parses a numeric field, defaulting to 0 on failure.
func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseDurationMS converts a duration field to milliseconds. Accepted
// forms: "H:MM:SS", "MM:SS", or a bare number of minutes (WHOOP exports
// durations in minutes). Unparseable input yields 0.
func parseDurationMS(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 3:
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		sec, errS := strconv.Atoi(parts[2])
		if errH != nil || errM != nil || errS != nil {
			return 0
		}
		return int64(((h*60+m)*60 + sec)) * 1000
	case 2:
		m, errM := strconv.Atoi(parts[0])
		sec, errS := strconv.Atoi(parts[1])
		if errM != nil || errS != nil {
			return 0
		}
		return int64(m*60+sec) * 1000
	}

	minutes, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(minutes * 60 * 1000)
}

// materialize builds one typed record from a data row and appends it to
// the set's slice for the category.
func materialize(c models.Category, set *models.RecordSet, row []string, cols map[string]int) {
	r := rowReader{row: row, cols: cols}

	switch c {
	case models.CategoryRecovery:
		set.Recovery = append(set.Recovery, models.RecoveryRecord{
			Date:             r.text(alias.FieldDate),
			RecoveryScore:    r.number(alias.FieldRecoveryScore),
			HRV:              r.number(alias.FieldHRV),
			RestingHeartRate: r.number(alias.FieldRestingHR),
			SkinTemp:         r.number(alias.FieldSkinTemp),
		})
	case models.CategorySleep:
		set.Sleep = append(set.Sleep, models.SleepRecord{
			Date:         r.text(alias.FieldDate),
			TotalSleepMS: r.millis(alias.FieldTotalSleep),
			Efficiency:   r.number(alias.FieldEfficiency),
			SlowWaveMS:   r.millis(alias.FieldSlowWave),
			REMMS:        r.millis(alias.FieldREM),
			LightMS:      r.millis(alias.FieldLight),
			AwakeMS:      r.millis(alias.FieldAwake),
			SleepScore:   r.number(alias.FieldSleepScore),
		})
	case models.CategoryWorkout:
		set.Workouts = append(set.Workouts, models.WorkoutRecord{
			Date:         r.text(alias.FieldDate),
			Strain:       r.number(alias.FieldStrain),
			Energy:       r.number(alias.FieldEnergy),
			AvgHeartRate: r.number(alias.FieldAvgHR),
			MaxHeartRate: r.number(alias.FieldMaxHR),
			DurationMS:   r.millis(alias.FieldDuration),
			WorkoutType:  r.text(alias.FieldWorkoutType),
		})
	case models.CategoryDaily:
		set.Daily = append(set.Daily, models.DailyActivityRecord{
			Date:           r.text(alias.FieldDate),
			Steps:          r.count(alias.FieldSteps),
			CaloriesBurned: r.number(alias.FieldCalories),
			AmbientTemp:    r.number(alias.FieldAmbientTemp),
		})
	case models.CategoryJournal:
		set.Journal = append(set.Journal, models.JournalRecord{
			Date:        r.text(alias.FieldDate),
			Question:    r.text(alias.FieldQuestion),
			AnsweredYes: r.flag(alias.FieldAnsweredYes),
			Notes:       r.text(alias.FieldNotes),
		})
	case models.CategoryStrength:
		rec := models.StrengthRecord{
			Date:       r.text(alias.FieldDate),
			Exercise:   r.text(alias.FieldExercise),
			Weight:     r.number(alias.FieldWeight),
			Reps:       r.count(alias.FieldReps),
			Sets:       r.count(alias.FieldSets),
			Volume:     r.number(alias.FieldVolume),
			OneRepMax:  r.number(alias.FieldOneRepMax),
			DurationMS: r.millis(alias.FieldDuration),
		}
		// StrongLifts does not export volume; derive it.
		if rec.Volume == 0 {
			rec.Volume = rec.Weight * float64(rec.Reps) * float64(rec.Sets)
		}
		set.Strength = append(set.Strength, rec)
	}
}
