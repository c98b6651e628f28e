// ABOUTME: SQLite connection lifecycle for the record store.
// ABOUTME: Pragmas ride the DSN so every pooled connection gets them.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// DB is the SQLite-backed Repository implementation.
type DB struct {
	db   *sql.DB
	path string
}

var _ Repository = (*DB)(nil)

// openPragmas tune SQLite for this tool's workload: batch inserts from
// one process, reads from the CLI and the MCP server. Applied via the
// DSN rather than Exec so connections opened later by the pool are
// configured identically.
var openPragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
	"foreign_keys(1)",
}

// Open opens or creates the record store at dbPath. The parent directory
// is created if missing; the database file is restricted to the owner.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &DB{db: db, path: dbPath}

	// initSchema also forces file creation, so chmod afterwards.
	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	if err := os.Chmod(dbPath, 0600); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("restrict database permissions: %w", err)
	}

	return d, nil
}

// dsn appends the pragma set to the database path as driver parameters.
func dsn(path string) string {
	return path + "?_pragma=" + strings.Join(openPragmas, "&_pragma=")
}

// Path returns the on-disk location of the store.
func (d *DB) Path() string {
	return d.path
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
