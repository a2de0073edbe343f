package convert

// csv.go is the flat-CSV pipeline. Columns are already canonical; the work
// here is the required-field pre-filter: rows without uid or coordinates are
// dropped with a logged line before validation, per the original import
// contract for this format. Dropped rows never become import errors.

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"geoconvert/internal/geojson"
	"geoconvert/internal/schema"
)

// utf8BOM is the byte-order mark Windows tools like to prepend to CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM returns a reader positioned past a leading UTF-8 BOM, if any.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil &&
		lead[0] == utf8BOM[0] && lead[1] == utf8BOM[1] && lead[2] == utf8BOM[2] {
		br.Discard(len(utf8BOM))
	}
	return br
}

// ConvertCSVFile reads a canonical-column CSV reference file and converts it
// to a feature collection. Rows missing uid, lat or lon are dropped with a
// logged reason; everything else flows through normalization and validation.
func ConvertCSVFile(path string, logger *slog.Logger) (geojson.FeatureCollection, Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return geojson.FeatureCollection{}, Summary{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	profile := schema.CSVProfile()
	summary := Summary{SourceGroup: profile.Name}

	reader := csv.NewReader(skipBOM(file))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return geojson.FeatureCollection{}, Summary{}, fmt.Errorf("reading header of %s: %w", path, err)
	}

	headers, diags := ResolveHeader(header, profile.HeaderLabels)
	for _, d := range diags {
		logger.Warn("unmapped header column", "label", d.Label, "field", d.Field)
	}

	normalizer := NewNormalizer(profile, headers, nil)
	validator := NewValidator(profile)

	var features []geojson.Feature
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return geojson.FeatureCollection{}, Summary{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if isEmptyRow(row) {
			continue
		}

		record := normalizer.Normalize(row)

		// Pre-filter: identity and geometry are non-negotiable for this
		// format. A row failing them is skipped, not error-collected.
		if uid, _ := record["uid"].(string); uid == "" {
			logger.Warn("row dropped", "reason", "attribute 'uid' missing", "row", row)
			summary.Dropped++
			continue
		}
		if _, ok := record["lat"].(float64); !ok {
			logger.Warn("row dropped", "reason", "attribute 'lat' missing or not a number", "row", row)
			summary.Dropped++
			continue
		}
		if _, ok := record["lon"].(float64); !ok {
			logger.Warn("row dropped", "reason", "attribute 'lon' missing or not a number", "row", row)
			summary.Dropped++
			continue
		}

		props, fieldErrs := validator.Validate(record)
		if fieldErrs != nil {
			summary.Errors = append(summary.Errors, newImportError(path, record, fieldErrs))
			continue
		}

		feature, ok := AssembleFeature(props, false)
		if !ok {
			summary.Errors = append(summary.Errors, newImportError(path, record, []FieldError{
				{Field: "lon", Message: "coordinates unusable after validation"},
			}))
			continue
		}
		features = append(features, feature)
	}

	summary.Features = len(features)
	return geojson.NewFeatureCollection(features), summary, nil
}

// isEmptyRow reports whether every cell of a row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
