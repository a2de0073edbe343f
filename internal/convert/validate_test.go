package convert

import (
	"reflect"
	"strings"
	"testing"

	"geoconvert/internal/schema"
)

func TestValidateCollectsAllFieldErrors(t *testing.T) {
	v := NewValidator(schema.ParkingSitesProfile())

	// uid empty, lat missing, lon wrong shape: all three must be reported.
	record := Record{
		"uid": "",
		"lon": "11.5",
	}

	props, errs := v.Validate(record)
	if props != nil {
		t.Fatalf("props = %v, want nil on failure", props)
	}
	if len(errs) != 3 {
		t.Fatalf("got %d field errors, want 3: %v", len(errs), errs)
	}

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{"uid", "lat", "lon"} {
		if !fields[want] {
			t.Errorf("missing field error for %q in %v", want, errs)
		}
	}
}

func TestValidatePassesCompleteRecord(t *testing.T) {
	v := NewValidator(schema.ParkingSitesProfile())

	record := Record{
		"uid":        "42",
		"lat":        48.1,
		"lon":        11.5,
		"name":       "Rathaus",
		"max_height": 230,
	}

	props, errs := v.Validate(record)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for field, want := range record {
		if props[field] != want {
			t.Errorf("props[%q] = %v, want %v", field, props[field], want)
		}
	}
}

func TestValidateStripsNilValuesRecursively(t *testing.T) {
	v := NewValidator(schema.ParkingSpotsProfile())

	record := Record{
		"uid":     "7",
		"lat":     48.1,
		"lon":     11.5,
		"comment": nil,
		"restricted_to": []any{
			map[string]any{"type": "CHARGING", "hours": nil},
		},
	}

	props, errs := v.Validate(record)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, present := props["comment"]; present {
		t.Error("nil top-level value must be stripped")
	}
	want := []any{map[string]any{"type": "CHARGING"}}
	if !reflect.DeepEqual(props["restricted_to"], want) {
		t.Errorf("restricted_to = %v, want %v (nil member stripped)", props["restricted_to"], want)
	}
}

func TestValidateKindMismatch(t *testing.T) {
	v := NewValidator(schema.ParkingSitesProfile())

	record := Record{
		"uid":      "42",
		"lat":      48.1,
		"lon":      11.5,
		"capacity": "hundert",
	}

	_, errs := v.Validate(record)
	if len(errs) != 1 || errs[0].Field != "capacity" {
		t.Fatalf("errs = %v, want one capacity error", errs)
	}
}

func TestImportErrorCarriesUIDAndRecord(t *testing.T) {
	record := Record{"uid": "42", "name": "Rathaus"}
	errs := []FieldError{{Field: "lat", Message: "required field is missing"}}

	importErr := newImportError("stuttgart", record, errs)

	if importErr.SourceUID != "stuttgart" {
		t.Errorf("SourceUID = %q, want stuttgart", importErr.SourceUID)
	}
	if importErr.RecordUID != "42" {
		t.Errorf("RecordUID = %q, want 42", importErr.RecordUID)
	}
	for _, fragment := range []string{"Rathaus", "lat", "required field is missing"} {
		if !strings.Contains(importErr.Message, fragment) {
			t.Errorf("message %q does not mention %q", importErr.Message, fragment)
		}
	}
}

func TestImportErrorString(t *testing.T) {
	withUID := ImportError{SourceUID: "s", RecordUID: "42", Message: "bad"}
	if withUID.String() != "s/42: bad" {
		t.Errorf("String() = %q", withUID.String())
	}
	withoutUID := ImportError{SourceUID: "s", Message: "bad"}
	if withoutUID.String() != "s: bad" {
		t.Errorf("String() = %q", withoutUID.String())
	}
}
