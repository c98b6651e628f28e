// ABOUTME: Consolidator merging per-file parse results into one dataset.
// ABOUTME: Pure concatenation in file order; no dedupe, no sorting.
package ingest

import (
	"time"

	"github.com/harperreed/pulse/internal/models"
)

// Dataset is the unified view across all successfully parsed files in a
// session. Built only on an explicit Consolidate call, so a caller can
// inspect or drop individual files before committing.
type Dataset struct {
	models.RecordSet `yaml:",inline"`

	Files          int       `json:"files" yaml:"files"`
	ConsolidatedAt time.Time `json:"consolidated_at" yaml:"consolidated_at"`
}

// Consolidate concatenates same-category records across files, in file
// order. Failed files are ignored; two records with the same date both
// survive.
func Consolidate(files []*ParsedFile) *Dataset {
	ds := &Dataset{ConsolidatedAt: time.Now()}
	for _, f := range files {
		if f == nil || !f.OK() || f.Records == nil {
			continue
		}
		f.Records.AppendTo(&ds.RecordSet)
		ds.Files++
	}
	return ds
}
