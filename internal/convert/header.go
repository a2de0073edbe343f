// Package convert implements the row-to-record pipeline that turns tabular
// parking reference data into GeoJSON features: header resolution, per-field
// normalization, validation with error collection, and feature assembly.
package convert

import (
	"fmt"
	"strings"
)

// HeaderMap maps a canonical field name to its column index in the input.
// It is built once per file from the header row.
type HeaderMap map[string]int

// Diagnostic reports an expected source column label that was not found in
// the header row. Diagnostics are non-fatal; the field simply never gets
// populated for that file.
type Diagnostic struct {
	Label string // the expected source column label
	Field string // the canonical field it would have fed
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("header column %q not found, field %q will be empty", d.Label, d.Field)
}

// normalizeHeader prepares a header cell or expected label for matching:
// whitespace (including embedded newlines) is collapsed to single spaces and
// the result is lowercased.
func normalizeHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// ResolveHeader matches the raw header row against the expected label map
// (source label -> canonical field) and returns the column index per field,
// plus one diagnostic per expected label that did not appear.
//
// Matching is case-insensitive with whitespace collapsed. When the same
// label occurs twice in the header the first occurrence wins.
func ResolveHeader(cells []string, labels map[string]string) (HeaderMap, []Diagnostic) {
	byLabel := make(map[string]int, len(cells))
	for i, cell := range cells {
		key := normalizeHeader(cell)
		if key == "" {
			continue
		}
		if _, seen := byLabel[key]; !seen {
			byLabel[key] = i
		}
	}

	mapping := make(HeaderMap, len(labels))
	var missing []Diagnostic
	for label, field := range labels {
		if idx, ok := byLabel[normalizeHeader(label)]; ok {
			mapping[field] = idx
		} else {
			missing = append(missing, Diagnostic{Label: label, Field: field})
		}
	}
	return mapping, missing
}

// Cell returns the raw cell for a canonical field, or "" when the field has
// no column in this file or the row is shorter than the header.
func (m HeaderMap) Cell(row []string, field string) string {
	idx, ok := m[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
