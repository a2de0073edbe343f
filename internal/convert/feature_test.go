package convert

import (
	"reflect"
	"testing"
)

func TestAssembleFeatureLongitudeFirst(t *testing.T) {
	// GeoJSON wants [lon, lat]; inverting the pair is the classic mistake.
	props := map[string]any{"uid": "42", "lat": 48.1, "lon": 11.5}

	feature, ok := AssembleFeature(props, true)
	if !ok {
		t.Fatal("AssembleFeature failed on valid coordinates")
	}
	if feature.Type != "Feature" || feature.Geometry.Type != "Point" {
		t.Errorf("unexpected types: %q / %q", feature.Type, feature.Geometry.Type)
	}
	if !reflect.DeepEqual(feature.Geometry.Coordinates, []float64{11.5, 48.1}) {
		t.Errorf("coordinates = %v, want [11.5 48.1] (lon first)", feature.Geometry.Coordinates)
	}
	if feature.Properties["lat"] != 48.1 || feature.Properties["lon"] != 11.5 {
		t.Error("keepCoordinates must leave lat/lon in properties")
	}
}

func TestAssembleFeatureDropsCoordinatesWhenAsked(t *testing.T) {
	props := map[string]any{"uid": "42", "lat": 48.1, "lon": 11.5}

	feature, ok := AssembleFeature(props, false)
	if !ok {
		t.Fatal("AssembleFeature failed on valid coordinates")
	}
	if _, present := feature.Properties["lat"]; present {
		t.Error("lat must be removed from properties")
	}
	if _, present := feature.Properties["lon"]; present {
		t.Error("lon must be removed from properties")
	}
	if !reflect.DeepEqual(feature.Geometry.Coordinates, []float64{11.5, 48.1}) {
		t.Errorf("coordinates = %v, want [11.5 48.1]", feature.Geometry.Coordinates)
	}
}

func TestAssembleFeatureRejectsMissingCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
	}{
		{"no coordinates", map[string]any{"uid": "42"}},
		{"lat only", map[string]any{"uid": "42", "lat": 48.1}},
		{"lon wrong type", map[string]any{"uid": "42", "lat": 48.1, "lon": "11.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := AssembleFeature(tt.props, true); ok {
				t.Error("AssembleFeature succeeded, want failure")
			}
		})
	}
}

func TestSummaryLine(t *testing.T) {
	s := Summary{SourceGroup: "parking-sites", Features: 12, Errors: []ImportError{{}, {}}}
	want := "Successful with 12 parking-sites and 2 Errors"
	if s.Line() != want {
		t.Errorf("Line() = %q, want %q", s.Line(), want)
	}
}
