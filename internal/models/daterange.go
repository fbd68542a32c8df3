// ABOUTME: DateRange value type for optional inclusive date windows.
package models

import "time"

// DateRange is an inclusive window. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Between returns a range bounded on both sides.
func Between(start, end time.Time) DateRange {
	return DateRange{Start: &start, End: &end}
}

// Since returns a range open at the end.
func Since(start time.Time) DateRange {
	return DateRange{Start: &start}
}

// Contains reports whether t falls within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// IsOpen reports whether neither bound is set.
func (r DateRange) IsOpen() bool {
	return r.Start == nil && r.End == nil
}

// DayOf truncates t to midnight UTC of its calendar day.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
