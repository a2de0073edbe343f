// Package schema holds the conversion profiles for the reference-table
// converters: which source column labels feed which canonical fields, how
// each field is coerced, and the enum tables used during normalization.
//
// Profiles are plain data. A profile is built once per run and passed by
// value into the normalizer; nothing in this package is mutated afterwards.
package schema

import "strings"

// FieldKind represents the coercion applied to a canonical field.
type FieldKind int

const (
	KindText       FieldKind = iota // trimmed passthrough, omitted when empty
	KindInt                         // digits-only integer, omitted otherwise
	KindCoordinate                  // decimal degrees, required for geometry
	KindBool                        // ja/nein, true/false, 1/0
	KindEnum                        // looked up in the spec's enum table
	KindDuration                    // German duration text, stored as minutes
	KindMultiline                   // free text collapsed to a single line
)

// FieldSpec defines the coercion rule for a single canonical field.
type FieldSpec struct {
	Name     string    // canonical field name, e.g. "max_height"
	Kind     FieldKind // coercion applied to the raw cell
	Required bool      // row is rejected when the field is missing or empty

	// Enum is the lookup table for KindEnum fields. Lookup is
	// case-insensitive and whitespace-trimmed.
	Enum EnumTable

	// EnumDefault is the canonical code used when an enum value is not in
	// the table. Empty means the field is omitted instead.
	EnumDefault string

	// MetersToCentimeters marks a length field whose source sometimes
	// carries meters as a fractional value. Fractional input is multiplied
	// by 100 and rounded; integral input is taken as centimeters as-is.
	// Only max_height is documented to need this.
	MetersToCentimeters bool

	// WrapInList wraps the single coerced value into a one-element list
	// because the target schema expects a list even for one category.
	WrapInList bool
}

// EnumTable maps normalized source text to a canonical enum code.
// Keys must already be in normalized form (lowercase, trimmed).
type EnumTable map[string]string

// Lookup resolves a raw source value case-insensitively with surrounding
// whitespace ignored. The second return is false when the value is unknown.
func (t EnumTable) Lookup(raw string) (string, bool) {
	code, ok := t[strings.ToLower(strings.TrimSpace(raw))]
	return code, ok
}

// NewEnumTable normalizes the keys of the given mapping so lookups stay
// case-insensitive regardless of how the table literal is written.
func NewEnumTable(m map[string]string) EnumTable {
	t := make(EnumTable, len(m))
	for k, v := range m {
		t[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return t
}
