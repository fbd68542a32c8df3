// ABOUTME: Parsing and structural validation of import files.
// ABOUTME: Every violation is collected; a valid file gets a non-mutating preview.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// ParseError reports an import file that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid backup file: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseImportFile decodes raw JSON into generic data for validation.
func ParseImportFile(raw []byte) (any, error) {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &ParseError{Err: err}
	}
	return data, nil
}

// Preview summarizes what an import would write.
type Preview struct {
	Version           string `json:"version"`
	ExportDate        string `json:"exportDate,omitempty"`
	Exercises         int    `json:"exercises"`
	Workouts          int    `json:"workouts"`
	WorkoutSets       int    `json:"workoutSets"`
	CardioSessions    int    `json:"cardioSessions"`
	BodyWeightEntries int    `json:"bodyWeightEntries"`
	HasSettings       bool   `json:"hasSettings"`
}

// ValidationResult lists every structural problem with an import file.
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors"`
	Preview *Preview `json:"preview,omitempty"`
}

var requiredArrays = []string{"workouts", "workoutSets", "cardioSessions", "exercises"}

// ValidateImportFile checks the top-level shape of parsed import data.
func ValidateImportFile(data any) *ValidationResult {
	obj, ok := data.(map[string]any)
	if !ok {
		return &ValidationResult{Errors: []string{"backup must be a JSON object"}}
	}

	var errs error
	switch v, ok := obj["version"]; {
	case !ok:
		errs = multierr.Append(errs, errors.New("missing required field: version"))
	case !isString(v):
		errs = multierr.Append(errs, errors.New("field version must be a string"))
	}

	for _, key := range requiredArrays {
		v, ok := obj[key]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("missing required field: %s", key))
			continue
		}
		if _, ok := v.([]any); !ok {
			errs = multierr.Append(errs, fmt.Errorf("field %s must be an array", key))
		}
	}

	if v, ok := obj["bodyWeightEntries"]; ok {
		if _, ok := v.([]any); !ok {
			errs = multierr.Append(errs, errors.New("field bodyWeightEntries must be an array"))
		}
	}
	if v, ok := obj["settings"]; ok && v != nil {
		if _, ok := v.(map[string]any); !ok {
			errs = multierr.Append(errs, errors.New("field settings must be an object or null"))
		}
	}

	if errs != nil {
		result := &ValidationResult{}
		for _, err := range multierr.Errors(errs) {
			result.Errors = append(result.Errors, err.Error())
		}
		return result
	}
	if _, err := DecodeSnapshot(data); err != nil {
		return &ValidationResult{Errors: []string{err.Error()}}
	}

	preview := &Preview{
		Version:           obj["version"].(string),
		Exercises:         arrayLen(obj["exercises"]),
		Workouts:          arrayLen(obj["workouts"]),
		WorkoutSets:       arrayLen(obj["workoutSets"]),
		CardioSessions:    arrayLen(obj["cardioSessions"]),
		BodyWeightEntries: arrayLen(obj["bodyWeightEntries"]),
		HasSettings:       obj["settings"] != nil,
	}
	if d, ok := obj["exportDate"].(string); ok {
		preview.ExportDate = d
	}
	return &ValidationResult{Valid: true, Errors: []string{}, Preview: preview}
}

// DecodeSnapshot converts validated data into a typed snapshot, parsing
// ISO-8601 date strings back into times. Date-only and zone-less values
// are read as UTC.
func DecodeSnapshot(data any) (*Snapshot, error) {
	raw, err := json.Marshal(normalizeDates(data))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &snap, nil
}

var timeFields = map[string]bool{
	"date":       true,
	"createdAt":  true,
	"updatedAt":  true,
	"exportDate": true,
}

var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// normalizeDates returns a copy of data with every time field in RFC 3339.
func normalizeDates(data any) any {
	switch v := data.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			if s, ok := val.(string); ok && timeFields[k] {
				out[k] = normalizeDate(s)
				continue
			}
			out[k] = normalizeDates(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = normalizeDates(val)
		}
		return out
	default:
		return data
	}
}

func normalizeDate(s string) string {
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return s
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.Format(time.RFC3339Nano)
		}
	}
	return s
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func arrayLen(v any) int {
	a, _ := v.([]any)
	return len(a)
}
