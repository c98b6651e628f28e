// ABOUTME: Repository interface for committed health records.
// ABOUTME: Defines the contract the CLI and MCP server program against.
package storage

import "github.com/harperreed/pulse/internal/models"

// Repository defines the storage interface for committed records.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// CommitSet persists every record in a consolidated set, tagged with
	// the source label. Returns the number of records written.
	CommitSet(set *models.RecordSet, source string) (int, error)

	// Record operations
	GetRecord(idOrPrefix string) (*StoredRecord, error)
	ListRecords(category *models.Category, limit int) ([]*StoredRecord, error)
	DeleteRecord(idOrPrefix string) error
	CountByCategory() (map[models.Category]int, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
