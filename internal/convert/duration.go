package convert

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// germanDurationRe splits a duration cell into a number and an optional
// German unit word, e.g. "30 Minuten", "2 Stunden", "1,5 Std.", "1 Tag".
var germanDurationRe = regexp.MustCompile(`^([0-9]+(?:[.,][0-9]+)?)\s*([A-Za-zÄÖÜäöü.]*)$`)

// durationUnitMinutes maps a lowercased German unit word to its length in
// minutes. The empty unit covers bare numbers, which are already minutes.
var durationUnitMinutes = map[string]float64{
	"":        1,
	"min":     1,
	"min.":    1,
	"minute":  1,
	"minuten": 1,
	"std":     60,
	"std.":    60,
	"stunde":  60,
	"stunden": 60,
	"tag":     24 * 60,
	"tage":    24 * 60,
}

// parseGermanDuration converts German free-text duration limits into whole
// minutes. Unknown units or non-numeric text omit the field.
func parseGermanDuration(s string) (any, bool) {
	m := germanDurationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return nil, false
	}
	unit, ok := durationUnitMinutes[strings.ToLower(m[2])]
	if !ok {
		return nil, false
	}
	return int(math.Round(value * unit)), true
}
