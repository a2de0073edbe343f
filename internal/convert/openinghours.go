package convert

// openinghours.go assembles the machine-readable opening-hours schedule from
// the seven raw columns of the reference workbooks: a 24/7 flag plus
// begin/end times for weekdays, Saturday and Sunday.
//
// The output follows the OSM opening_hours syntax the downstream schema
// expects: "24/7" or day groups like "Mo-Fr 08:00-18:00; Sa 09:00-14:00".

import (
	"strings"
	"time"

	"geoconvert/internal/schema"
)

// allDayLiteral is how an all-day range comes out of the workbooks
// (midnight to midnight). The downstream schema only accepts the
// 00:00-24:00 spelling, so assembled schedules are rewritten.
const (
	allDayLiteral   = "00:00-00:00"
	allDayCanonical = "00:00-24:00"
)

// clockLayouts are the time spellings accepted from the workbook cells.
var clockLayouts = []string{"15:04:05", "15:04", "15"}

// parseClock normalizes a time cell to "HH:MM". Empty or unparseable cells
// return false.
func parseClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}

// buildOpeningHours assembles the schedule string from the opening-hours
// fields of one row, fetched via get by canonical field name. The second
// return is false when the row carries no usable schedule at all.
//
// A day group is only emitted when both its begin and end times parse; a
// half-filled pair is treated as absent rather than guessed at.
func buildOpeningHours(get func(field string) string) (string, bool) {
	if open247, ok := parseGermanBool(get(schema.FieldOpeningHours24_7)); ok && open247 {
		return "24/7", true
	}

	groups := []struct {
		days  string
		begin string
		end   string
	}{
		{"Mo-Fr", schema.FieldOpeningHoursWeekdayBegin, schema.FieldOpeningHoursWeekdayEnd},
		{"Sa", schema.FieldOpeningHoursSaturdayBegin, schema.FieldOpeningHoursSaturdayEnd},
		{"Su", schema.FieldOpeningHoursSundayBegin, schema.FieldOpeningHoursSundayEnd},
	}

	var parts []string
	for _, g := range groups {
		begin, okBegin := parseClock(get(g.begin))
		end, okEnd := parseClock(get(g.end))
		if !okBegin || !okEnd {
			continue
		}
		parts = append(parts, g.days+" "+begin+"-"+end)
	}
	if len(parts) == 0 {
		return "", false
	}
	return rewriteAllDay(strings.Join(parts, "; ")), true
}

// rewriteAllDay replaces every midnight-to-midnight range with the
// 00:00-24:00 spelling. Applied to every assembled or externally sourced
// schedule before it enters a record.
func rewriteAllDay(schedule string) string {
	return strings.ReplaceAll(schedule, allDayLiteral, allDayCanonical)
}
