// ABOUTME: Tests for Repository interface implementation.
// ABOUTME: Verifies commit, listing, prefix deletes, and export round-trip.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/pulse/internal/models"
)

func TestOpen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "test.db")
	db, err := Open(p)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if db.Path() != p {
		t.Errorf("Path() = %q, want %q", db.Path(), p)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatalf("database file not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("database permissions = %o, want 0600", perm)
	}
}

func TestDSNCarriesPragmas(t *testing.T) {
	got := dsn("/tmp/x.db")
	for _, want := range []string{"_pragma=journal_mode(WAL)", "_pragma=busy_timeout(5000)"} {
		if !strings.Contains(got, want) {
			t.Errorf("dsn missing %q: %s", want, got)
		}
	}
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}

func sampleSet() *models.RecordSet {
	return &models.RecordSet{
		Recovery: []models.RecoveryRecord{
			{Date: "2024-01-01", RecoveryScore: 72, HRV: 55, RestingHeartRate: 52},
			{Date: "2024-01-02", RecoveryScore: 64, HRV: 48, RestingHeartRate: 55},
		},
		Strength: []models.StrengthRecord{
			{Date: "2024-02-01", Exercise: "Squat", Weight: 100, Reps: 5, Sets: 5, Volume: 2500},
		},
	}
}

func TestCommitSetAndList(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	n, err := db.CommitSet(sampleSet(), "batch-1")
	if err != nil {
		t.Fatalf("CommitSet failed: %v", err)
	}
	if n != 3 {
		t.Errorf("committed %d records, want 3", n)
	}

	all, err := db.ListRecords(nil, 0)
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}

	// Most recent date first.
	if all[0].Date != "2024-02-01" {
		t.Errorf("expected most recent first, got %s", all[0].Date)
	}

	// Filter by category.
	recovery := models.CategoryRecovery
	recs, err := db.ListRecords(&recovery, 0)
	if err != nil {
		t.Fatalf("ListRecords with category failed: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("expected 2 recovery records, got %d", len(recs))
	}
	if recs[0].SourceFile != "batch-1" {
		t.Errorf("SourceFile = %q, want batch-1", recs[0].SourceFile)
	}

	// Payload fields survive the round trip.
	if got := recs[1].Fields["recovery_score"]; got != 72.0 {
		t.Errorf("recovery_score = %v, want 72", got)
	}

	// Limit.
	limited, err := db.ListRecords(nil, 2)
	if err != nil {
		t.Fatalf("ListRecords with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 records with limit, got %d", len(limited))
	}
}

func TestGetRecordByPrefix(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.CommitSet(sampleSet(), ""); err != nil {
		t.Fatalf("CommitSet failed: %v", err)
	}

	all, err := db.ListRecords(nil, 0)
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}

	want := all[0]
	got, err := db.GetRecord(want.ID.String()[:8])
	if err != nil {
		t.Fatalf("GetRecord by prefix failed: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, want.ID)
	}

	if _, err := db.GetRecord("ffffffff"); err == nil {
		t.Error("expected error for unknown prefix")
	}
}

func TestDeleteRecord(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.CommitSet(sampleSet(), ""); err != nil {
		t.Fatalf("CommitSet failed: %v", err)
	}

	all, _ := db.ListRecords(nil, 0)
	if err := db.DeleteRecord(all[0].ID.String()[:8]); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}

	remaining, _ := db.ListRecords(nil, 0)
	if len(remaining) != 2 {
		t.Errorf("expected 2 records after delete, got %d", len(remaining))
	}

	if err := db.DeleteRecord("ffffffff"); err == nil {
		t.Error("expected error deleting unknown record")
	}
}

func TestCountByCategory(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.CommitSet(sampleSet(), ""); err != nil {
		t.Fatalf("CommitSet failed: %v", err)
	}

	counts, err := db.CountByCategory()
	if err != nil {
		t.Fatalf("CountByCategory failed: %v", err)
	}
	if counts[models.CategoryRecovery] != 2 || counts[models.CategoryStrength] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.CommitSet(sampleSet(), "orig"); err != nil {
		t.Fatalf("CommitSet failed: %v", err)
	}

	raw, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	encoded, err := EncodeJSON(raw)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}

	// Import into a fresh database.
	db2 := setupTestDB(t)
	defer db2.Close()

	decoded, err := DecodeJSON(encoded)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if err := db2.ImportData(decoded); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	restored, err := db2.ListRecords(nil, 0)
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(restored) != 3 {
		t.Fatalf("expected 3 restored records, got %d", len(restored))
	}
	// IDs preserved.
	orig, _ := db.ListRecords(nil, 0)
	if restored[0].ID != orig[0].ID {
		t.Errorf("ID not preserved: %v vs %v", restored[0].ID, orig[0].ID)
	}

	// Re-importing the same data collides on IDs.
	if err := db2.ImportData(decoded); err == nil {
		t.Error("expected duplicate import to fail")
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.CommitSet(sampleSet(), ""); err != nil {
		t.Fatalf("CommitSet failed: %v", err)
	}

	data, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	out, err := EncodeYAML(data)
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	if len(out) == 0 {
		t.Error("empty YAML output")
	}
}
