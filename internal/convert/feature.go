package convert

import (
	"fmt"

	"geoconvert/internal/geojson"
)

// Summary is the end-of-run result of one conversion: how many features were
// produced, how many rows were dropped by the pre-filter, and the collected
// import errors. Row-level problems never fail the run; they only show up
// here.
type Summary struct {
	SourceGroup string
	Features    int
	Dropped     int
	Errors      []ImportError
}

// Line renders the one-line success summary printed at the end of a run.
func (s Summary) Line() string {
	return fmt.Sprintf("Successful with %d %s and %d Errors", s.Features, s.SourceGroup, len(s.Errors))
}

// AssembleFeature builds a GeoJSON feature from validated properties.
// Coordinates are [lon, lat] - longitude first, per the GeoJSON spec.
//
// When keepCoordinates is false the lat/lon entries are removed from the
// properties after the geometry is built; the flat CSV format keeps its
// coordinates in the geometry only. The second return is false when the
// properties carry no usable coordinates.
func AssembleFeature(props map[string]any, keepCoordinates bool) (geojson.Feature, bool) {
	lon, lonOK := props["lon"].(float64)
	lat, latOK := props["lat"].(float64)
	if !lonOK || !latOK {
		return geojson.Feature{}, false
	}
	if !keepCoordinates {
		delete(props, "lon")
		delete(props, "lat")
	}
	return geojson.Feature{
		Type:       "Feature",
		Properties: props,
		Geometry:   geojson.NewPoint(lon, lat),
	}, true
}
