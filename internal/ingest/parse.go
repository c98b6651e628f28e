// ABOUTME: Per-file parse pipeline: tokenize, classify, resolve, materialize.
// ABOUTME: File-level failures are recorded on the result, never panicked.
package ingest

import (
	"fmt"
	"strings"

	"github.com/harperreed/pulse/internal/models"
	"github.com/harperreed/pulse/internal/resolve"
)

// ParsedFile is the terminal outcome for one uploaded file. A failed parse
// carries Error and nothing else; a successful one carries the category,
// its records, and row accounting. Never mutated after creation.
//
// Records is a single-category list: the concrete type is fixed by
// Category, so a file cannot hold records of two kinds.
type ParsedFile struct {
	Name     string            `json:"name"`
	Category models.Category   `json:"category"`
	Records  models.RecordList `json:"records,omitempty"`

	// RowsProcessed counts every data row attempted, including skipped
	// ones. RowsSkipped counts short rows dropped without a record.
	RowsProcessed int `json:"rows_processed"`
	RowsSkipped   int `json:"rows_skipped"`

	Error string `json:"error,omitempty"`
}

// OK reports whether the file parsed successfully.
func (p *ParsedFile) OK() bool {
	return p.Error == ""
}

// ParseFile runs the full pipeline on one file's raw text. The resolver's
// learned tier is updated as a side effect of successful resolution.
func ParseFile(name, raw string, resolver *resolve.Resolver) *ParsedFile {
	result := &ParsedFile{Name: name}

	table, err := Tokenize(raw)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if len(table) < 2 {
		result.Error = "no data rows found"
		return result
	}

	header := table[0]
	category := Classify(header)
	if category == models.CategoryUnknown {
		result.Error = fmt.Sprintf(
			"unrecognized export format: headers [%s] match no known schema (recovery, sleep, workout, daily activity, journal, strength)",
			strings.Join(header, ", "))
		return result
	}
	result.Category = category

	mapping, err := resolver.Columns(category, header)
	if err != nil {
		result.Error = fmt.Sprintf("resolve columns: %v", err)
		return result
	}
	cols := mapping.Indices(header)

	var set models.RecordSet
	for _, row := range table[1:] {
		result.RowsProcessed++
		if len(row) < len(header) {
			result.RowsSkipped++
			continue
		}
		materialize(category, &set, row, cols)
	}
	result.Records = set.List(category)

	return result
}
