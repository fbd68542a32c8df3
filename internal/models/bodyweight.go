// ABOUTME: BodyWeightEntry model for tracking body weight over time.
package models

import "time"

// BodyWeightEntry is a body weight measurement on a date.
type BodyWeightEntry struct {
	ID     string    `json:"id" yaml:"id"`
	Date   time.Time `json:"date" yaml:"date"`
	Weight float64   `json:"weight" yaml:"weight"`
	Notes  *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewBodyWeightEntry creates an entry for weight on date.
func NewBodyWeightEntry(date time.Time, weight float64) *BodyWeightEntry {
	return &BodyWeightEntry{Date: date, Weight: weight}
}

// WithNotes sets notes on the entry.
func (b *BodyWeightEntry) WithNotes(notes string) *BodyWeightEntry {
	b.Notes = &notes
	return b
}
