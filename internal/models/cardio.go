// ABOUTME: CardioSession model for treadmill and stationary bike sessions.
// ABOUTME: Duration is in seconds; distance and speed use canonical units.
package models

import "time"

// CardioType identifies the cardio machine used.
type CardioType string

const (
	CardioTreadmill      CardioType = "treadmill"
	CardioStationaryBike CardioType = "stationary-bike"
)

// AllCardioTypes lists every valid cardio type.
var AllCardioTypes = []CardioType{CardioTreadmill, CardioStationaryBike}

// IsValidCardioType checks if a string names a cardio type.
func IsValidCardioType(s string) bool {
	for _, c := range AllCardioTypes {
		if string(c) == s {
			return true
		}
	}
	return false
}

// CardioSession is a single cardio session.
// Incline fields apply to treadmills, resistance and cadence to bikes.
type CardioSession struct {
	ID            string     `json:"id" yaml:"id"`
	Date          time.Time  `json:"date" yaml:"date"`
	Type          CardioType `json:"type" yaml:"type"`
	Duration      int        `json:"duration" yaml:"duration"`
	Distance      *float64   `json:"distance,omitempty" yaml:"distance,omitempty"`
	AvgSpeed      *float64   `json:"avgSpeed,omitempty" yaml:"avgSpeed,omitempty"`
	AvgIncline    *float64   `json:"avgIncline,omitempty" yaml:"avgIncline,omitempty"`
	MaxIncline    *float64   `json:"maxIncline,omitempty" yaml:"maxIncline,omitempty"`
	AvgResistance *float64   `json:"avgResistance,omitempty" yaml:"avgResistance,omitempty"`
	AvgCadence    *float64   `json:"avgCadence,omitempty" yaml:"avgCadence,omitempty"`
	Calories      *float64   `json:"calories,omitempty" yaml:"calories,omitempty"`
	Notes         *string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" yaml:"updatedAt"`
}

// NewCardioSession creates a session of the given type and duration in seconds.
func NewCardioSession(cardioType CardioType, date time.Time, durationSeconds int) *CardioSession {
	return &CardioSession{
		Type:     cardioType,
		Date:     date,
		Duration: durationSeconds,
	}
}

// WithDistance sets the distance covered.
func (c *CardioSession) WithDistance(d float64) *CardioSession {
	c.Distance = &d
	return c
}

// WithCalories sets the calories burned.
func (c *CardioSession) WithCalories(kcal float64) *CardioSession {
	c.Calories = &kcal
	return c
}

// WithIncline sets average and max incline.
func (c *CardioSession) WithIncline(avg, peak float64) *CardioSession {
	c.AvgIncline = &avg
	c.MaxIncline = &peak
	return c
}

// WithResistance sets average resistance and cadence.
func (c *CardioSession) WithResistance(resistance, cadence float64) *CardioSession {
	c.AvgResistance = &resistance
	c.AvgCadence = &cadence
	return c
}

// WithNotes sets notes on the session.
func (c *CardioSession) WithNotes(notes string) *CardioSession {
	c.Notes = &notes
	return c
}

// DistanceOrZero returns the distance, treating a missing value as zero.
func (c *CardioSession) DistanceOrZero() float64 {
	if c.Distance == nil {
		return 0
	}
	return *c.Distance
}
