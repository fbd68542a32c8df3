// ABOUTME: Settings singleton model with unit, theme, and timer preferences.
// ABOUTME: Defaults apply when the record is lazily created.
package models

// SettingsID is the fixed primary key of the settings record.
const SettingsID = "settings"

type WeightUnit string

const (
	WeightKg  WeightUnit = "kg"
	WeightLbs WeightUnit = "lbs"
)

type DistanceUnit string

const (
	DistanceMi DistanceUnit = "mi"
	DistanceKm DistanceUnit = "km"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Settings holds user preferences. Stored weights and distances are always
// canonical; units here only affect display.
type Settings struct {
	ID               string       `json:"id" yaml:"id"`
	WeightUnit       WeightUnit   `json:"weightUnit" yaml:"weightUnit"`
	DistanceUnit     DistanceUnit `json:"distanceUnit" yaml:"distanceUnit"`
	Theme            Theme        `json:"theme" yaml:"theme"`
	RestTimerDefault int          `json:"restTimerDefault" yaml:"restTimerDefault"`
	BarbellWeight    float64      `json:"barbellWeight" yaml:"barbellWeight"`
}

// DefaultSettings returns the settings a fresh store starts with.
func DefaultSettings() *Settings {
	return &Settings{
		ID:               SettingsID,
		WeightUnit:       WeightKg,
		DistanceUnit:     DistanceMi,
		Theme:            ThemeSystem,
		RestTimerDefault: 90,
		BarbellWeight:    20,
	}
}

// IsValidWeightUnit checks if a string names a weight unit.
func IsValidWeightUnit(s string) bool {
	return s == string(WeightKg) || s == string(WeightLbs)
}

// IsValidDistanceUnit checks if a string names a distance unit.
func IsValidDistanceUnit(s string) bool {
	return s == string(DistanceMi) || s == string(DistanceKm)
}

// IsValidTheme checks if a string names a theme.
func IsValidTheme(s string) bool {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
