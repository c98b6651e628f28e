// ABOUTME: CRUD operations for committed records in SQLite.
// ABOUTME: Typed records are stored as JSON payloads keyed by category and date.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/pulse/internal/models"
)

// StoredRecord is one committed record as persisted. Fields holds the
// decoded JSON payload of the original typed record.
type StoredRecord struct {
	ID         uuid.UUID       `json:"id" yaml:"id"`
	Category   models.Category `json:"category" yaml:"category"`
	Date       string          `json:"date" yaml:"date"`
	Fields     map[string]any  `json:"fields" yaml:"fields"`
	SourceFile string          `json:"source_file,omitempty" yaml:"source_file,omitempty"`
	CreatedAt  time.Time       `json:"created_at" yaml:"created_at"`
}

// CommitSet persists every record in a consolidated set inside one
// transaction. A failed insert rolls back the whole commit.
func (d *DB) CommitSet(set *models.RecordSet, source string) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin commit: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	count := 0
	insert := func(category models.Category, date string, record any) error {
		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode %s record: %w", category, err)
		}
		_, err = tx.Exec(`
			INSERT INTO records (id, category, record_date, payload, source_file, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			string(category),
			date,
			string(payload),
			source,
			time.Now().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert %s record: %w", category, err)
		}
		count++
		return nil
	}

	for _, r := range set.Recovery {
		if err := insert(models.CategoryRecovery, r.Date, r); err != nil {
			return 0, err
		}
	}
	for _, r := range set.Sleep {
		if err := insert(models.CategorySleep, r.Date, r); err != nil {
			return 0, err
		}
	}
	for _, r := range set.Workouts {
		if err := insert(models.CategoryWorkout, r.Date, r); err != nil {
			return 0, err
		}
	}
	for _, r := range set.Daily {
		if err := insert(models.CategoryDaily, r.Date, r); err != nil {
			return 0, err
		}
	}
	for _, r := range set.Journal {
		if err := insert(models.CategoryJournal, r.Date, r); err != nil {
			return 0, err
		}
	}
	for _, r := range set.Strength {
		if err := insert(models.CategoryStrength, r.Date, r); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit records: %w", err)
	}
	return count, nil
}

// GetRecord retrieves a record by ID or ID prefix.
func (d *DB) GetRecord(idOrPrefix string) (*StoredRecord, error) {
	id, err := d.resolveRecordID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, category, record_date, payload, source_file, created_at
		FROM records
		WHERE id = ?
	`
	return d.scanRecord(d.db.QueryRow(query, id))
}

// ListRecords retrieves records with optional filtering by category.
// Results are sorted by record date descending (most recent first).
func (d *DB) ListRecords(category *models.Category, limit int) ([]*StoredRecord, error) {
	var query string
	var args []interface{}

	if category != nil {
		query = `
			SELECT id, category, record_date, payload, source_file, created_at
			FROM records
			WHERE category = ?
			ORDER BY record_date DESC, created_at DESC
		`
		args = append(args, string(*category))
	} else {
		query = `
			SELECT id, category, record_date, payload, source_file, created_at
			FROM records
			ORDER BY record_date DESC, created_at DESC
		`
	}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return d.scanRecords(rows)
}

// DeleteRecord removes a record by ID or prefix.
func (d *DB) DeleteRecord(idOrPrefix string) error {
	id, err := d.resolveRecordID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	return nil
}

// CountByCategory returns committed record counts per category.
func (d *DB) CountByCategory() (map[models.Category]int, error) {
	rows, err := d.db.Query("SELECT category, COUNT(*) FROM records GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	defer rows.Close()

	out := make(map[models.Category]int)
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[models.Category(cat)] = n
	}
	return out, rows.Err()
}

// resolveRecordID resolves an ID or unique prefix to a full record ID.
func (d *DB) resolveRecordID(idOrPrefix string) (string, error) {
	rows, err := d.db.Query("SELECT id FROM records WHERE id LIKE ?", idOrPrefix+"%")
	if err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("resolve id: %w", err)
		}
		ids = append(ids, id)
		if len(ids) > 1 {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	if len(ids) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(ids) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}
	return ids[0], nil
}

// scanRecord scans a single record row.
func (d *DB) scanRecord(row *sql.Row) (*StoredRecord, error) {
	var r StoredRecord
	var idStr, catStr, payload, createdAt string
	var source sql.NullString

	err := row.Scan(&idStr, &catStr, &r.Date, &payload, &source, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scan record: %w", err)
	}

	return finishRecord(&r, idStr, catStr, payload, source, createdAt)
}

// scanRecords scans multiple record rows.
func (d *DB) scanRecords(rows *sql.Rows) ([]*StoredRecord, error) {
	var records []*StoredRecord
	for rows.Next() {
		var r StoredRecord
		var idStr, catStr, payload, createdAt string
		var source sql.NullString

		if err := rows.Scan(&idStr, &catStr, &r.Date, &payload, &source, &createdAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec, err := finishRecord(&r, idStr, catStr, payload, source, createdAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// finishRecord decodes the scanned column values into a StoredRecord.
func finishRecord(r *StoredRecord, idStr, catStr, payload string, source sql.NullString, createdAt string) (*StoredRecord, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse record id: %w", err)
	}
	r.ID = id
	r.Category = models.Category(catStr)
	if source.Valid {
		r.SourceFile = source.String
	}
	if err := json.Unmarshal([]byte(payload), &r.Fields); err != nil {
		return nil, fmt.Errorf("decode record payload: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		r.CreatedAt = t
	}
	return r, nil
}
