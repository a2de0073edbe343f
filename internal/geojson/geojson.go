// Package geojson defines the GeoJSON output model and the collection writer.
//
// The downstream aggregation service consumes one FeatureCollection per input
// file. Every feature is a Point with a flat (occasionally nested) properties
// object; no other geometry types are produced.
package geojson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Point is a GeoJSON point geometry. Coordinates are [lon, lat] per the
// GeoJSON spec - longitude first.
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewPoint builds a point geometry from a longitude and a latitude.
func NewPoint(lon, lat float64) Point {
	return Point{Type: "Point", Coordinates: []float64{lon, lat}}
}

// Feature is a single GeoJSON feature. Properties never contain nil values;
// the validator strips them before assembly.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Point          `json:"geometry"`
}

// FeatureCollection is the top-level container written to disk.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection wraps features in a collection. A nil slice is
// replaced with an empty one so the JSON output always contains "features": [].
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// OutputPath derives the output file path from an input path by swapping the
// extension for .geojson. An input without an extension gets .geojson appended.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".geojson"
}

// Write serializes the collection to path as UTF-8 JSON with 4-space
// indentation and HTML escaping disabled, so umlauts and other non-ASCII
// text stay readable in diffs.
//
// The file is written to a temp file in the target directory first and then
// renamed, so a crash mid-write never leaves a truncated .geojson behind.
func Write(path string, fc FeatureCollection) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(fc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encoding feature collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s to %s: %w", tmpName, path, err)
	}
	return nil
}
