// ABOUTME: CSV tokenizer producing rows of trimmed string fields.
// ABOUTME: Character scan with a quote flag; no embedded newlines, no "" unescape.
package ingest

import (
	"fmt"
	"strings"
)

// RawTable is the tokenized form of an export file. Row 0 is the header.
// Data rows may carry a different field count than the header; short rows
// are skipped during materialization, not here.
type RawTable [][]string

// Tokenize splits raw file text into rows of fields. Quoting keeps commas
// inside a field but does not span lines: multi-line quoted values are not
// supported. Doubled quotes are not unescaped.
func Tokenize(raw string) (RawTable, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty file")
	}

	var table RawTable
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		table = append(table, splitLine(line))
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	return table, nil
}

// splitLine scans one line character by character. A quote toggles the
// in-quotes flag; a comma outside quotes closes the current field.
func splitLine(line string) []string {
	var fields []string
	var buf strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(buf.String()))
	return fields
}
