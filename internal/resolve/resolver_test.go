// ABOUTME: Tests for the layered header resolver.
// ABOUTME: Exact short-circuit, substring, fuzzy floor, learned tier.
package resolve

import (
	"testing"

	"github.com/harperreed/pulse/internal/alias"
	"github.com/harperreed/pulse/internal/models"
)

func TestColumnsExactMatch(t *testing.T) {
	r := New(alias.NewMemoryStore())

	headers := []string{"Cycle start time", "Recovery score %", "HRV (ms)"}
	mapping, err := r.Columns(models.CategoryRecovery, headers)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}

	want := map[string]string{
		alias.FieldDate:          "Cycle start time",
		alias.FieldRecoveryScore: "Recovery score %",
		alias.FieldHRV:           "HRV (ms)",
	}
	for field, header := range want {
		if got := mapping[field]; got != header {
			t.Errorf("mapping[%s] = %q, want %q", field, got, header)
		}
	}
	if _, ok := mapping[alias.FieldRestingHR]; ok {
		t.Error("resting_heart_rate should be unmapped for these headers")
	}
}

func TestColumnsExactWinsOverNearMatch(t *testing.T) {
	r := New(alias.NewMemoryStore())

	// "HRV (ms) avg" is a strong substring candidate, but the exact alias
	// match must win outright.
	headers := []string{"HRV (ms) avg", "HRV"}
	mapping, err := r.Columns(models.CategoryRecovery, headers)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if got := mapping[alias.FieldHRV]; got != "HRV" {
		t.Errorf("mapping[hrv] = %q, want exact header %q", got, "HRV")
	}
}

func TestColumnsSubstringMatch(t *testing.T) {
	r := New(alias.NewMemoryStore())

	// "Recovery" is a substring of no alias, but alias "recovery" is a
	// substring of "Daily Recovery"; containment maps it.
	headers := []string{"Date", "Daily Recovery"}
	mapping, err := r.Columns(models.CategoryRecovery, headers)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if got := mapping[alias.FieldRecoveryScore]; got != "Daily Recovery" {
		t.Errorf("mapping[recovery_score] = %q, want %q", got, "Daily Recovery")
	}
}

func TestColumnsFuzzyFloor(t *testing.T) {
	r := New(alias.NewMemoryStore())

	// "dermal reading" is neither a substring of nor similar enough to any
	// skin_temp alias; the field must stay unmapped.
	headers := []string{"Date", "dermal reading"}
	mapping, err := r.Columns(models.CategoryRecovery, headers)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if got, ok := mapping[alias.FieldSkinTemp]; ok {
		t.Errorf("skin_temp mapped to %q, want unmapped", got)
	}
}

func TestColumnsFuzzyAcceptsTypo(t *testing.T) {
	r := New(alias.NewMemoryStore())

	// One substitution away from the alias "recovery score" (similarity
	// 13/14) and not an exact or substring match.
	headers := []string{"Recovary score"}
	mapping, err := r.Columns(models.CategoryRecovery, headers)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if got := mapping[alias.FieldRecoveryScore]; got != "Recovary score" {
		t.Errorf("mapping[recovery_score] = %q, want fuzzy match", got)
	}
}

func TestColumnsLearnsConfirmedMatches(t *testing.T) {
	store := alias.NewMemoryStore()
	r := New(store)

	headers := []string{"Cycle start time", "Recovery score %"}
	if _, err := r.Columns(models.CategoryRecovery, headers); err != nil {
		t.Fatalf("Columns failed: %v", err)
	}

	learned, err := store.Get(models.CategoryRecovery, alias.FieldRecoveryScore)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	found := false
	for _, a := range learned {
		if a == "recovery score %" {
			found = true
		}
	}
	if !found {
		t.Errorf("confirmed header not learned, store has %v", learned)
	}
}

func TestColumnsLearnedTierResolves(t *testing.T) {
	store := alias.NewMemoryStore()
	r := New(store)

	// Static tier alone cannot map this header.
	headers := []string{"Date", "Variability Index"}
	mapping, err := r.Columns(models.CategoryRecovery, headers)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if _, ok := mapping[alias.FieldHRV]; ok {
		t.Fatal("precondition: static tier should not map Variability Index")
	}

	// A confirmed learned alias makes the same header resolve on the next
	// file.
	if err := store.Put(models.CategoryRecovery, alias.FieldHRV, "Variability Index"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	mapping, err = r.Columns(models.CategoryRecovery, headers)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if got := mapping[alias.FieldHRV]; got != "Variability Index" {
		t.Errorf("mapping[hrv] = %q, want learned match", got)
	}
}

func TestMappingIndices(t *testing.T) {
	headers := []string{"Date", "HRV (ms)", "Recovery score %"}
	m := Mapping{
		alias.FieldDate: "Date",
		alias.FieldHRV:  "HRV (ms)",
	}
	idx := m.Indices(headers)
	if idx[alias.FieldDate] != 0 || idx[alias.FieldHRV] != 1 {
		t.Errorf("Indices = %v", idx)
	}
	if _, ok := idx[alias.FieldRecoveryScore]; ok {
		t.Error("unmapped field should have no index")
	}
}
