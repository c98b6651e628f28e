// ABOUTME: Tests for field coercion and record materialization.
// ABOUTME: Covers duration forms, numeric defaults, booleans, derived volume.
package ingest

import (
	"testing"

	"github.com/harperreed/pulse/internal/alias"
	"github.com/harperreed/pulse/internal/models"
)

func TestParseDurationMS(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1:30:00", 5_400_000},
		{"45:00", 2_700_000},
		{"90", 5_400_000}, // bare number is minutes
		{"0:05:30", 330_000},
		{"7.5", 450_000},
		{"", 0},
		{"abc", 0},
		{"1:xx:00", 0},
	}
	for _, tt := range tests {
		if got := parseDurationMS(tt.in); got != tt.want {
			t.Errorf("parseDurationMS(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseNumberDefaultsToZero(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"72", 72},
		{" 55.5 ", 55.5},
		{"", 0},
		{"n/a", 0},
	}
	for _, tt := range tests {
		if got := parseNumber(tt.in); got != tt.want {
			t.Errorf("parseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRowReaderFlag(t *testing.T) {
	cols := map[string]int{alias.FieldAnsweredYes: 0}
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", false},
		{"0", false},
		{"", false},
	}
	for _, tt := range tests {
		r := rowReader{row: []string{tt.in}, cols: cols}
		if got := r.flag(alias.FieldAnsweredYes); got != tt.want {
			t.Errorf("flag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRowReaderMissingColumnDefaults(t *testing.T) {
	// Unmapped field and index past the row end both read as zero values.
	r := rowReader{row: []string{"2024-01-01"}, cols: map[string]int{
		alias.FieldDate: 0,
		alias.FieldHRV:  5,
	}}
	if got := r.text(alias.FieldDate); got != "2024-01-01" {
		t.Errorf("text(date) = %q", got)
	}
	if got := r.number(alias.FieldHRV); got != 0 {
		t.Errorf("number(hrv past row end) = %v, want 0", got)
	}
	if got := r.number(alias.FieldRecoveryScore); got != 0 {
		t.Errorf("number(unmapped) = %v, want 0", got)
	}
}

func TestMaterializeStrengthDerivesVolume(t *testing.T) {
	cols := map[string]int{
		alias.FieldDate:     0,
		alias.FieldExercise: 1,
		alias.FieldWeight:   2,
		alias.FieldReps:     3,
		alias.FieldSets:     4,
	}
	var set models.RecordSet
	materialize(models.CategoryStrength, &set, []string{"2024-02-01", "Squat", "100", "5", "5"}, cols)

	if len(set.Strength) != 1 {
		t.Fatalf("expected 1 strength record, got %d", len(set.Strength))
	}
	rec := set.Strength[0]
	if rec.Volume != 2500 {
		t.Errorf("derived volume = %v, want 2500", rec.Volume)
	}
}

func TestMaterializeStrengthKeepsExportedVolume(t *testing.T) {
	cols := map[string]int{
		alias.FieldWeight: 0,
		alias.FieldReps:   1,
		alias.FieldSets:   2,
		alias.FieldVolume: 3,
	}
	var set models.RecordSet
	materialize(models.CategoryStrength, &set, []string{"100", "5", "5", "3000"}, cols)

	if got := set.Strength[0].Volume; got != 3000 {
		t.Errorf("volume = %v, want exported 3000", got)
	}
}

func TestMaterializeSleepDurations(t *testing.T) {
	cols := map[string]int{
		alias.FieldDate:       0,
		alias.FieldTotalSleep: 1,
		alias.FieldREM:        2,
		alias.FieldEfficiency: 3,
	}
	var set models.RecordSet
	materialize(models.CategorySleep, &set, []string{"2024-01-05", "7:30:00", "90", "94.5"}, cols)

	rec := set.Sleep[0]
	if rec.TotalSleepMS != 27_000_000 {
		t.Errorf("TotalSleepMS = %d, want 27000000", rec.TotalSleepMS)
	}
	if rec.REMMS != 5_400_000 {
		t.Errorf("REMMS = %d, want 5400000 (90 min)", rec.REMMS)
	}
	if rec.Efficiency != 94.5 {
		t.Errorf("Efficiency = %v, want 94.5", rec.Efficiency)
	}
}
