package geojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"data/stuttgart.csv", "data/stuttgart.geojson"},
		{"sources/parking-sites/stuttgart.xlsx", "sources/parking-sites/stuttgart.geojson"},
		{"plainfile", "plainfile.geojson"},
		{"a.b.csv", "a.b.geojson"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := OutputPath(tt.input); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFeatureCollectionNeverNil(t *testing.T) {
	fc := NewFeatureCollection(nil)
	raw, err := json.Marshal(fc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"features":[]`) {
		t.Errorf("empty collection must serialize features as [], got %s", raw)
	}
}

func TestWrite(t *testing.T) {
	fc := NewFeatureCollection([]Feature{
		{
			Type:       "Feature",
			Properties: map[string]any{"uid": "42", "name": "Tiefgarage Königstraße", "max_height": 230},
			Geometry:   NewPoint(11.5, 48.1),
		},
	})

	path := filepath.Join(t.TempDir(), "out.geojson")
	if err := Write(path, fc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)

	// 4-space indent, keys at one level deep
	if !strings.Contains(content, "\n    \"features\"") {
		t.Error("output is not indented with 4 spaces")
	}
	// non-ASCII stays unescaped
	if !strings.Contains(content, "Königstraße") {
		t.Errorf("non-ASCII text was escaped:\n%s", content)
	}
	if strings.Contains(content, `\u`) {
		t.Errorf("output contains escape sequences:\n%s", content)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["type"] != "FeatureCollection" {
		t.Errorf("type = %v", decoded["type"])
	}

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.geojson")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 10000)), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, NewFeatureCollection(nil)); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(raw, []byte("x")) {
		t.Error("old content survived the rewrite")
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("replaced file is not valid JSON: %v", err)
	}
}

func TestWriteStableOutput(t *testing.T) {
	fc := NewFeatureCollection([]Feature{
		{
			Type:       "Feature",
			Properties: map[string]any{"b": 1, "a": 2, "c": 3, "uid": "42"},
			Geometry:   NewPoint(1, 2),
		},
	})

	dir := t.TempDir()
	first := filepath.Join(dir, "first.geojson")
	second := filepath.Join(dir, "second.geojson")
	if err := Write(first, fc); err != nil {
		t.Fatal(err)
	}
	if err := Write(second, fc); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("two writes of the same collection differ")
	}

	// map keys are emitted in sorted order, which keeps diffs stable
	idxA := bytes.Index(a, []byte(`"a"`))
	idxB := bytes.Index(a, []byte(`"b"`))
	idxC := bytes.Index(a, []byte(`"c"`))
	if !(idxA < idxB && idxB < idxC) {
		t.Errorf("property keys not in stable sorted order: %s", a)
	}
}
