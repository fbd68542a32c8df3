// ABOUTME: Tests for DateRange bounds and day truncation.
package models

import (
	"testing"
	"time"
)

func TestDateRangeContainsInclusive(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	r := Between(start, end)

	if !r.Contains(start) || !r.Contains(end) {
		t.Error("expected bounds to be included")
	}
	if r.Contains(start.Add(-time.Second)) || r.Contains(end.Add(time.Second)) {
		t.Error("expected instants outside bounds to be excluded")
	}
	if !(DateRange{}).Contains(start) {
		t.Error("expected open range to contain everything")
	}
	if !Since(start).Contains(end.AddDate(5, 0, 0)) {
		t.Error("expected half-open range to contain later dates")
	}
}

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2025, 3, 2, 3, 0, 0, 0, loc)

	got := DayOf(ts)
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DayOf = %v, want %v", got, want)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.ID != SettingsID || s.WeightUnit != WeightKg || s.DistanceUnit != DistanceMi ||
		s.Theme != ThemeSystem || s.RestTimerDefault != 90 || s.BarbellWeight != 20 {
		t.Errorf("unexpected defaults: %+v", s)
	}
}
