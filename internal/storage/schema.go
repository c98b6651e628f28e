// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: One records table keyed by id, with category and date columns.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		record_date TEXT NOT NULL,
		payload TEXT NOT NULL,
		source_file TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_records_category ON records(category);
	CREATE INDEX IF NOT EXISTS idx_records_date ON records(record_date DESC);
	CREATE INDEX IF NOT EXISTS idx_records_category_date ON records(category, record_date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
