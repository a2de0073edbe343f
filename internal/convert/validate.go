package convert

// validate.go checks normalized records against the profile's field specs
// before they become features. Validation is a result contract, not an
// exception: a record either yields type-correct properties or a list of
// field errors. One bad row never aborts the batch; the pipelines collect an
// ImportError per failed row and keep going.

import (
	"fmt"
	"strings"

	"geoconvert/internal/schema"
)

// FieldError describes a single offending field in a record.
type FieldError struct {
	Field   string // canonical field name
	Message string // human-readable reason
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ImportError is the per-row failure collected during a run. It is reported
// in the end-of-run summary and never mixed into the feature list.
type ImportError struct {
	SourceUID string // uid of the source being converted
	RecordUID string // uid of the failing row, when known
	Message   string
}

func (e ImportError) String() string {
	if e.RecordUID != "" {
		return fmt.Sprintf("%s/%s: %s", e.SourceUID, e.RecordUID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.SourceUID, e.Message)
}

// Validator checks records against one profile's specs.
type Validator struct {
	profile schema.Profile
}

// NewValidator builds a validator for the given profile.
func NewValidator(profile schema.Profile) *Validator {
	return &Validator{profile: profile}
}

// Validate checks a normalized record and returns the validated properties,
// or the full list of field errors when anything is off. All offending
// fields are reported at once, not just the first.
//
// On success the returned map is a copy with nil values stripped, including
// inside nested list-of-object fields, so the emitted JSON never contains
// null placeholders.
func (v *Validator) Validate(record Record) (map[string]any, []FieldError) {
	var errs []FieldError

	for _, spec := range v.profile.Fields {
		value, present := record[spec.Name]
		if !present || value == nil {
			if spec.Required {
				errs = append(errs, FieldError{Field: spec.Name, Message: "required field is missing"})
			}
			continue
		}
		if err := checkKind(value, spec); err != nil {
			errs = append(errs, *err)
		}
	}

	if errs != nil {
		return nil, errs
	}

	props := make(map[string]any, len(record))
	for field, value := range record {
		if cleaned, ok := stripNil(value); ok {
			props[field] = cleaned
		}
	}
	return props, nil
}

// checkKind verifies that a coerced value has the shape its spec promises.
// The normalizer produces these shapes; the check guards against rule
// changes drifting apart from the validator's contract.
func checkKind(value any, spec schema.FieldSpec) *FieldError {
	if spec.WrapInList {
		if _, ok := value.([]any); !ok {
			return &FieldError{Field: spec.Name, Message: "expected a list value"}
		}
		return nil
	}

	switch spec.Kind {
	case schema.KindText, schema.KindEnum, schema.KindMultiline:
		s, ok := value.(string)
		if !ok {
			return &FieldError{Field: spec.Name, Message: "expected text"}
		}
		if spec.Required && strings.TrimSpace(s) == "" {
			return &FieldError{Field: spec.Name, Message: "required field is empty"}
		}
	case schema.KindInt, schema.KindDuration:
		if _, ok := value.(int); !ok {
			return &FieldError{Field: spec.Name, Message: "expected an integer"}
		}
	case schema.KindCoordinate:
		if _, ok := value.(float64); !ok {
			return &FieldError{Field: spec.Name, Message: "expected a decimal coordinate"}
		}
	case schema.KindBool:
		if _, ok := value.(bool); !ok {
			return &FieldError{Field: spec.Name, Message: "expected a boolean"}
		}
	}
	return nil
}

// stripNil removes nil values from a value tree. Maps lose their nil
// entries, lists lose nil elements and recurse into nested objects. The
// second return is false when the value itself should be dropped.
func stripNil(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, inner := range v {
			if cleaned, ok := stripNil(inner); ok {
				out[k] = cleaned
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	case []any:
		out := make([]any, 0, len(v))
		for _, inner := range v {
			if cleaned, ok := stripNil(inner); ok {
				out = append(out, cleaned)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	default:
		return value, true
	}
}

// newImportError builds the collected error for a row that failed
// validation, embedding the normalized record and every field error the
// way the downstream import report expects.
func newImportError(sourceUID string, record Record, errs []FieldError) ImportError {
	recordUID, _ := record["uid"].(string)
	reasons := make([]string, len(errs))
	for i, e := range errs {
		reasons[i] = e.Error()
	}
	return ImportError{
		SourceUID: sourceUID,
		RecordUID: recordUID,
		Message:   fmt.Sprintf("invalid record %v: %s", record, strings.Join(reasons, "; ")),
	}
}
