// ABOUTME: Export and import functionality for committed records.
// ABOUTME: Supports JSON and YAML backup formats with full round-trip.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for committed records.
type ExportData struct {
	Version    string          `json:"version" yaml:"version"`
	ExportedAt time.Time       `json:"exported_at" yaml:"exported_at"`
	Tool       string          `json:"tool" yaml:"tool"`
	Records    []*StoredRecord `json:"records" yaml:"records"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	records, err := d.ListRecords(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "pulse",
		Records:    records,
	}, nil
}

// ImportData imports records from an export file, preserving IDs.
// Duplicate IDs cause an error and roll back the import.
func (d *DB) ImportData(data *ExportData) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, r := range data.Records {
		payload, err := json.Marshal(r.Fields)
		if err != nil {
			return fmt.Errorf("encode record payload: %w", err)
		}
		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		_, err = tx.Exec(`
			INSERT INTO records (id, category, record_date, payload, source_file, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID.String(),
			string(r.Category),
			r.Date,
			string(payload),
			r.SourceFile,
			createdAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import record %s: %w", r.ID.String()[:8], err)
		}
	}

	return tx.Commit()
}

// EncodeJSON renders an export as indented JSON.
func EncodeJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// EncodeYAML renders an export as YAML, with records grouped by category
// for readability.
func EncodeYAML(data *ExportData) ([]byte, error) {
	yamlData := struct {
		Version    string                  `yaml:"version"`
		ExportedAt string                  `yaml:"exported_at"`
		Tool       string                  `yaml:"tool"`
		Records    map[string][]yamlRecord `yaml:"records"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Records:    make(map[string][]yamlRecord),
	}

	for _, r := range data.Records {
		cat := string(r.Category)
		yamlData.Records[cat] = append(yamlData.Records[cat], yamlRecord{
			ID:     r.ID.String()[:8],
			Date:   r.Date,
			Fields: r.Fields,
			Source: r.SourceFile,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlRecord struct {
	ID     string         `yaml:"id"`
	Date   string         `yaml:"date"`
	Fields map[string]any `yaml:"fields"`
	Source string         `yaml:"source,omitempty"`
}

// DecodeJSON parses a JSON export file.
func DecodeJSON(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse export file: %w", err)
	}
	return &data, nil
}
