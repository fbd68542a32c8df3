// ABOUTME: Versioned snapshot format shared by export and import.
// ABOUTME: Holds every record table plus the optional settings singleton.
package backup

import (
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

// SnapshotVersion is written into every export.
const SnapshotVersion = "1.0"

// Snapshot is a full backup. Exercises carries custom exercises only; the
// built-in catalog is reseeded rather than exported.
type Snapshot struct {
	Version           string                    `json:"version" yaml:"version"`
	ExportDate        time.Time                 `json:"exportDate" yaml:"exportDate"`
	Exercises         []*models.Exercise        `json:"exercises" yaml:"exercises"`
	Workouts          []*models.Workout         `json:"workouts" yaml:"workouts"`
	WorkoutSets       []*models.WorkoutSet      `json:"workoutSets" yaml:"workoutSets"`
	CardioSessions    []*models.CardioSession   `json:"cardioSessions" yaml:"cardioSessions"`
	BodyWeightEntries []*models.BodyWeightEntry `json:"bodyWeightEntries,omitempty" yaml:"bodyWeightEntries,omitempty"`
	Settings          *models.Settings          `json:"settings" yaml:"settings"`
}

// ImportMode selects how a snapshot combines with existing data.
type ImportMode string

const (
	// ModeMerge upserts snapshot records over existing ones.
	ModeMerge ImportMode = "merge"
	// ModeReplace clears workouts, sets, cardio sessions, and custom
	// exercises before upserting.
	ModeReplace ImportMode = "replace"
)

// IsValid reports whether m is a known mode.
func (m ImportMode) IsValid() bool {
	return m == ModeMerge || m == ModeReplace
}

// ImportCounts is the number of records written per table.
type ImportCounts struct {
	Exercises         int  `json:"exercises"`
	Workouts          int  `json:"workouts"`
	WorkoutSets       int  `json:"workoutSets"`
	CardioSessions    int  `json:"cardioSessions"`
	BodyWeightEntries int  `json:"bodyWeightEntries"`
	Settings          bool `json:"settings"`
}

// ImportResult reports an import. On failure nothing was written and
// Imported is zero.
type ImportResult struct {
	Success  bool         `json:"success"`
	Mode     ImportMode   `json:"mode"`
	Imported ImportCounts `json:"imported"`
	Errors   []string     `json:"errors"`
}

// SuggestedFilename is the default export file name for t.
func SuggestedFilename(t time.Time) string {
	return "fitness-tracker-backup-" + t.Format("2006-01-02") + ".json"
}
