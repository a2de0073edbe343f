package convert

// xlsx.go is the spreadsheet pipeline. Unlike the CSV pre-filter, rows here
// flow all the way into validation; a failing row is collected as an
// ImportError carrying its uid and the embedded record, and the run
// continues. The header row is localized (German), so the profile's label
// map does the resolution.

import (
	"log/slog"
	"strings"
	"time"

	"geoconvert/internal/geojson"
	"geoconvert/internal/schema"
)

// ConvertRows converts the rows of one worksheet (header in row 1, data from
// row 2) into a feature collection plus the collected per-row errors.
//
// Rows whose first cell is empty are skipped entirely; LibreOffice tends to
// append blank rows at the end of a file.
func ConvertRows(rows [][]string, profile schema.Profile, sourceUID string, now func() time.Time, logger *slog.Logger) (geojson.FeatureCollection, Summary) {
	summary := Summary{SourceGroup: profile.Name}
	if len(rows) == 0 {
		return geojson.NewFeatureCollection(nil), summary
	}

	headers, diags := ResolveHeader(rows[0], profile.HeaderLabels)
	for _, d := range diags {
		logger.Warn("unmapped header column", "label", d.Label, "field", d.Field)
	}

	normalizer := NewNormalizer(profile, headers, now)
	validator := NewValidator(profile)

	var features []geojson.Feature
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		record := normalizer.Normalize(row)

		props, fieldErrs := validator.Validate(record)
		if fieldErrs != nil {
			summary.Errors = append(summary.Errors, newImportError(sourceUID, record, fieldErrs))
			continue
		}

		feature, ok := AssembleFeature(props, true)
		if !ok {
			summary.Errors = append(summary.Errors, newImportError(sourceUID, record, []FieldError{
				{Field: "lon", Message: "coordinates unusable after validation"},
			}))
			continue
		}
		features = append(features, feature)
	}

	summary.Features = len(features)
	return geojson.NewFeatureCollection(features), summary
}
