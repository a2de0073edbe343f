package convert

// normalize.go applies the per-field transform rules of a conversion profile
// to one raw row, producing the normalized record handed to the validator.
//
// The rules handle the messy reality of hand-maintained reference tables:
//   - localized free text standing in for enum codes ("Parkhaus", "Fahrrad")
//   - numeric limits typed as text, sometimes with "n/a" placeholders
//   - heights entered in meters where centimeters were asked for
//   - multi-line fee descriptions
//   - opening hours spread over seven columns
//
// Malformed optional values are omitted from the record, never coerced to
// zero or kept as raw text. Required-field problems are left in place for
// the validator to report.

import (
	"math"
	"strconv"
	"strings"
	"time"

	"geoconvert/internal/schema"
)

// Record is a normalized row: canonical field name -> coerced value.
type Record map[string]any

// Normalizer applies one profile's rule set to raw rows.
type Normalizer struct {
	profile schema.Profile
	headers HeaderMap
	now     func() time.Time
}

// NewNormalizer builds a normalizer for one input file. The clock is
// injectable so tests can freeze static_data_updated_at; nil means time.Now.
func NewNormalizer(profile schema.Profile, headers HeaderMap, now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{profile: profile, headers: headers, now: now}
}

// Normalize converts one raw row into a Record by applying the profile's
// field specs and synthesizing the composite fields (address, external
// identifiers, opening hours, restrictions, timestamps).
func (n *Normalizer) Normalize(row []string) Record {
	record := make(Record, len(n.profile.Fields)+4)

	for _, spec := range n.profile.Fields {
		raw := n.headers.Cell(row, spec.Name)
		value, ok := coerceField(raw, spec)
		if !ok {
			continue
		}
		if spec.WrapInList {
			value = []any{value}
		}
		record[spec.Name] = value
	}

	n.addAddress(record, row)
	n.addExternalIdentifiers(record, row)
	n.addOpeningHours(record, row)

	if n.profile.HasRealtimeData {
		record["has_realtime_data"] = true
	}
	if n.profile.StampUpdatedAt {
		record["static_data_updated_at"] = n.now().UTC().Format(time.RFC3339)
	}

	return record
}

// addAddress joins the street and postcode/city columns with ", " when both
// are present. A single populated column is not enough for a usable address.
func (n *Normalizer) addAddress(record Record, row []string) {
	if n.profile.AddressStreetField == "" || n.profile.AddressCityField == "" {
		return
	}
	street := strings.TrimSpace(n.headers.Cell(row, n.profile.AddressStreetField))
	city := strings.TrimSpace(n.headers.Cell(row, n.profile.AddressCityField))
	if street == "" || city == "" {
		return
	}
	record["address"] = street + ", " + city
}

// addExternalIdentifiers emits the list-of-objects form of the external
// identifier field. The target schema moved from a bare object to a list;
// this converter emits the list form only.
func (n *Normalizer) addExternalIdentifiers(record Record, row []string) {
	if n.profile.ExternalIDField == "" {
		return
	}
	raw := strings.TrimSpace(n.headers.Cell(row, n.profile.ExternalIDField))
	if raw == "" {
		return
	}
	record["external_identifiers"] = []any{
		map[string]any{"type": n.profile.ExternalIDType, "value": raw},
	}
}

// addOpeningHours assembles the schedule string from the seven opening-hours
// columns. For the parking-spots variant the schedule and the dedication
// column are folded into a restricted_to entry instead of top-level fields.
func (n *Normalizer) addOpeningHours(record Record, row []string) {
	if !n.profile.HasOpeningHours {
		return
	}
	hours, ok := buildOpeningHours(func(field string) string {
		return n.headers.Cell(row, field)
	})

	if n.profile.RestrictedTo == nil {
		if ok {
			record["opening_hours"] = hours
		}
		return
	}

	entry := make(map[string]any, 2)
	if code, found := n.profile.RestrictedTo.Lookup(n.headers.Cell(row, "type")); found {
		entry["type"] = code
	}
	if ok {
		entry["hours"] = hours
	}
	if len(entry) > 0 {
		record["restricted_to"] = []any{entry}
	}
}

// coerceField applies a single field spec to a raw cell. The second return
// is false when the field should be omitted from the record.
func coerceField(raw string, spec schema.FieldSpec) (any, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}

	switch spec.Kind {
	case schema.KindText:
		return trimmed, true

	case schema.KindInt:
		return coerceInt(trimmed, spec.MetersToCentimeters)

	case schema.KindCoordinate:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, false
		}
		return f, true

	case schema.KindBool:
		b, ok := parseGermanBool(trimmed)
		if !ok {
			return nil, false
		}
		return b, true

	case schema.KindEnum:
		if code, ok := spec.Enum.Lookup(trimmed); ok {
			return code, true
		}
		if spec.EnumDefault != "" {
			return spec.EnumDefault, true
		}
		return nil, false

	case schema.KindDuration:
		return parseGermanDuration(trimmed)

	case schema.KindMultiline:
		collapsed := strings.Join(strings.Fields(trimmed), " ")
		if collapsed == "" {
			return nil, false
		}
		return collapsed, true
	}

	return nil, false
}

// coerceInt converts a numeric limit cell to an integer. Digits-only text is
// taken verbatim; other numeric text is parsed as a float and rounded.
// Non-numeric text ("n/a") omits the field.
//
// When metersToCM is set and the value carries a fractional part, the cell
// was filled in meters even though the column asks for centimeters, so the
// value is scaled by 100 before rounding. Integral values pass through
// unscaled.
func coerceInt(s string, metersToCM bool) (any, bool) {
	if isDigits(s) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	if metersToCM && f != math.Trunc(f) {
		return int(math.Round(f * 100)), true
	}
	return int(math.Round(f)), true
}

// isDigits reports whether s consists entirely of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseGermanBool accepts the boolean spellings seen in the reference
// tables: ja/nein alongside the usual true/false, yes/no, 1/0.
func parseGermanBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ja", "true", "yes", "y", "1", "wahr":
		return true, true
	case "nein", "false", "no", "n", "0", "falsch":
		return false, true
	default:
		return false, false
	}
}
