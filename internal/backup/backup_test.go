package backup_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/fitlog/internal/backup"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var base = time.Date(2025, 2, 3, 9, 30, 0, 0, time.UTC)

func openStore(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "fitlog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.SeedExercises(context.Background())
	require.NoError(t, err)
	return db
}

// populate adds one custom exercise, one workout with two sets, one cardio
// session, and one body weight entry.
func populate(t *testing.T, db *storage.DB) (workoutID, customID string) {
	t.Helper()
	ctx := context.Background()

	customID, err := db.AddExercise(ctx, models.NewExercise("Sled Push", models.MuscleLegs, models.EquipmentOther))
	require.NoError(t, err)
	workoutID, err = db.AddWorkout(ctx, models.NewWorkout(base).WithNotes("heavy"))
	require.NoError(t, err)
	_, err = db.AddSet(ctx, models.NewWorkoutSet(workoutID, customID, 1, 10, 60))
	require.NoError(t, err)
	_, err = db.AddSet(ctx, models.NewWorkoutSet(workoutID, customID, 2, 8, 80).WithRPE(9))
	require.NoError(t, err)
	_, err = db.AddCardioSession(ctx, models.NewCardioSession(models.CardioTreadmill, base, 1800).WithDistance(3.1))
	require.NoError(t, err)
	_, err = db.AddBodyWeightEntry(ctx, models.NewBodyWeightEntry(base, 81.2))
	require.NoError(t, err)
	return workoutID, customID
}

func TestExportAllData(t *testing.T) {
	db := openStore(t)
	populate(t, db)
	ctx := context.Background()

	snap, err := backup.NewService(db).ExportAllData(ctx)
	require.NoError(t, err)

	assert.Equal(t, backup.SnapshotVersion, snap.Version)
	assert.False(t, snap.ExportDate.IsZero())
	assert.Len(t, snap.Exercises, 1, "only custom exercises are exported")
	assert.Len(t, snap.Workouts, 1)
	assert.Len(t, snap.WorkoutSets, 2)
	assert.Len(t, snap.CardioSessions, 1)
	assert.Len(t, snap.BodyWeightEntries, 1)
	assert.Nil(t, snap.Settings, "settings are not created by export")

	_, err = db.GetSettings(ctx)
	require.NoError(t, err)
	snap, err = backup.NewService(db).ExportAllData(ctx)
	require.NoError(t, err)
	assert.NotNil(t, snap.Settings)
}

func TestExportJSONHasEmptyArrays(t *testing.T) {
	db := openStore(t)

	raw, err := backup.NewService(db).ExportJSON(context.Background())
	require.NoError(t, err)

	data, err := backup.ParseImportFile(raw)
	require.NoError(t, err)
	obj := data.(map[string]any)
	assert.Equal(t, []any{}, obj["workouts"])
	assert.Nil(t, obj["settings"])

	result := backup.ValidateImportFile(data)
	assert.True(t, result.Valid, result.Errors)
}

func TestExportYAML(t *testing.T) {
	db := openStore(t)
	populate(t, db)

	raw, err := backup.NewService(db).ExportYAML(context.Background())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &out))
	assert.Equal(t, "1.0", out["version"])
	assert.Len(t, out["workoutSets"], 2)
}

func TestRoundTripReplaceImport(t *testing.T) {
	src := openStore(t)
	populate(t, src)
	ctx := context.Background()

	raw, err := backup.NewService(src).ExportJSON(ctx)
	require.NoError(t, err)

	data, err := backup.ParseImportFile(raw)
	require.NoError(t, err)
	validation := backup.ValidateImportFile(data)
	require.True(t, validation.Valid, validation.Errors)
	assert.Equal(t, &backup.Preview{
		Version:           "1.0",
		ExportDate:        data.(map[string]any)["exportDate"].(string),
		Exercises:         1,
		Workouts:          1,
		WorkoutSets:       2,
		CardioSessions:    1,
		BodyWeightEntries: 1,
	}, validation.Preview)

	snap, err := backup.DecodeSnapshot(data)
	require.NoError(t, err)

	dst := openStore(t)
	populate(t, dst)
	result := backup.NewService(dst).ImportData(ctx, snap, backup.ModeReplace)
	require.True(t, result.Success, result.Errors)
	assert.Equal(t, backup.ImportCounts{
		Exercises: 1, Workouts: 1, WorkoutSets: 2, CardioSessions: 1, BodyWeightEntries: 1,
	}, result.Imported)

	workouts, _ := dst.GetAllWorkouts(ctx)
	sets, _ := dst.GetAllSets(ctx)
	cardio, _ := dst.GetAllCardioSessions(ctx)
	custom, _ := dst.GetCustomExercises(ctx)
	assert.Len(t, workouts, 1)
	assert.Len(t, sets, 2)
	assert.Len(t, cardio, 1)
	assert.Len(t, custom, 1)

	orig, _ := src.GetAllWorkouts(ctx)
	assert.Equal(t, orig[0].ID, workouts[0].ID)
	assert.True(t, orig[0].Date.Equal(workouts[0].Date))
	require.NotNil(t, workouts[0].Notes)
	assert.Equal(t, "heavy", *workouts[0].Notes)
}

func TestMergeVersusReplace(t *testing.T) {
	ctx := context.Background()
	incoming := &backup.Snapshot{
		Version:  backup.SnapshotVersion,
		Workouts: []*models.Workout{{ID: "imported", Date: base, CreatedAt: base, UpdatedAt: base}},
	}

	merged := openStore(t)
	populate(t, merged)
	result := backup.NewService(merged).ImportData(ctx, incoming, backup.ModeMerge)
	require.True(t, result.Success, result.Errors)
	workouts, _ := merged.GetAllWorkouts(ctx)
	assert.Len(t, workouts, 2)
	custom, _ := merged.GetCustomExercises(ctx)
	assert.Len(t, custom, 1)

	replaced := openStore(t)
	populate(t, replaced)
	result = backup.NewService(replaced).ImportData(ctx, incoming, backup.ModeReplace)
	require.True(t, result.Success, result.Errors)
	workouts, _ = replaced.GetAllWorkouts(ctx)
	require.Len(t, workouts, 1)
	assert.Equal(t, "imported", workouts[0].ID)

	custom, _ = replaced.GetCustomExercises(ctx)
	assert.Empty(t, custom, "replace removes custom exercises")
	all, _ := replaced.GetAllExercises(ctx)
	assert.Len(t, all, storage.CatalogSize(), "built-in exercises survive replace")
	sets, _ := replaced.GetAllSets(ctx)
	assert.Empty(t, sets)
	weights, _ := replaced.GetAllBodyWeightEntries(ctx)
	assert.Len(t, weights, 1, "body weight is not cleared by replace")
}

func TestImportFailureRollsBack(t *testing.T) {
	db := openStore(t)
	populate(t, db)
	ctx := context.Background()

	bad := &backup.Snapshot{
		Version:     backup.SnapshotVersion,
		Workouts:    []*models.Workout{{ID: "new-workout", Date: base}},
		WorkoutSets: []*models.WorkoutSet{{ID: "bad-set", WorkoutID: "new-workout", ExerciseID: "x", SetNumber: 1, Reps: 0}},
		Settings:    models.DefaultSettings(),
	}

	result := backup.NewService(db).ImportData(ctx, bad, backup.ModeReplace)
	assert.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, backup.ImportCounts{}, result.Imported)

	_, err := db.GetWorkout(ctx, "new-workout")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	workouts, _ := db.GetAllWorkouts(ctx)
	assert.Len(t, workouts, 1, "replace clearing was rolled back")
	custom, _ := db.GetCustomExercises(ctx)
	assert.Len(t, custom, 1)
	settings, _ := db.FindSettings(ctx)
	assert.Nil(t, settings)
}

func TestImportSettings(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()

	s := models.DefaultSettings()
	s.WeightUnit = models.WeightLbs
	result := backup.NewService(db).ImportData(ctx, &backup.Snapshot{Version: "1.0", Settings: s}, backup.ModeMerge)
	require.True(t, result.Success, result.Errors)
	assert.True(t, result.Imported.Settings)

	got, err := db.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.WeightLbs, got.WeightUnit)
}

func TestImportRejectsUnknownMode(t *testing.T) {
	db := openStore(t)

	result := backup.NewService(db).ImportData(context.Background(), &backup.Snapshot{}, backup.ImportMode("append"))
	assert.False(t, result.Success)
	assert.Len(t, result.Errors, 1)
}

func TestValidateImportFile(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		wantErrors []string
	}{
		{
			name:       "not an object",
			data:       []any{1, 2},
			wantErrors: []string{"backup must be a JSON object"},
		},
		{
			name: "missing version and workouts",
			data: map[string]any{
				"workoutSets": []any{}, "cardioSessions": []any{}, "exercises": []any{},
			},
			wantErrors: []string{"missing required field: version", "missing required field: workouts"},
		},
		{
			name: "wrong types everywhere",
			data: map[string]any{
				"version": 1.0, "workouts": map[string]any{}, "workoutSets": "x",
				"cardioSessions": nil, "exercises": 3.0, "settings": "dark",
			},
			wantErrors: []string{
				"field version must be a string",
				"field workouts must be an array",
				"field workoutSets must be an array",
				"field cardioSessions must be an array",
				"field exercises must be an array",
				"field settings must be an object or null",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := backup.ValidateImportFile(tt.data)
			assert.False(t, result.Valid)
			assert.Nil(t, result.Preview)
			assert.Equal(t, tt.wantErrors, result.Errors)
		})
	}
}

func TestValidateImportFilePreview(t *testing.T) {
	data := map[string]any{
		"version":        "1.0",
		"exportDate":     "2025-02-03T09:30:00.000Z",
		"workouts":       []any{map[string]any{}, map[string]any{}},
		"workoutSets":    []any{},
		"cardioSessions": []any{map[string]any{}},
		"exercises":      []any{},
		"settings":       map[string]any{"theme": "dark"},
	}

	result := backup.ValidateImportFile(data)
	require.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 2, result.Preview.Workouts)
	assert.Equal(t, 1, result.Preview.CardioSessions)
	assert.True(t, result.Preview.HasSettings)
	assert.Equal(t, "2025-02-03T09:30:00.000Z", result.Preview.ExportDate)
}

func TestParseImportFile(t *testing.T) {
	_, err := backup.ParseImportFile([]byte(`{"version": "1.0",`))
	var pe *backup.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Error(), "invalid backup file")

	data, err := backup.ParseImportFile([]byte(`{"version": "1.0"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"version": "1.0"}, data)
}

func TestDecodeSnapshotRehydratesDates(t *testing.T) {
	data, err := backup.ParseImportFile([]byte(`{
		"version": "1.0",
		"exportDate": "2025-02-03T09:30:00.000Z",
		"exercises": [],
		"workouts": [{"id": "w1", "date": "2025-02-01T18:00:00.000Z", "createdAt": "2025-02-01T18:00:00.000Z", "updatedAt": "2025-02-01T19:00:00.000Z"}],
		"workoutSets": [{"id": "s1", "workoutId": "w1", "exerciseId": "e1", "setNumber": 1, "reps": 5, "weight": 100, "rpe": 8.5}],
		"cardioSessions": [],
		"settings": null
	}`))
	require.NoError(t, err)

	snap, err := backup.DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC), snap.Workouts[0].Date.UTC())
	assert.Equal(t, 8.5, *snap.WorkoutSets[0].RPE)
	assert.Nil(t, snap.Settings)

	_, err = backup.DecodeSnapshot(map[string]any{"exportDate": "yesterday"})
	var pe *backup.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestDecodeSnapshotAcceptsDateOnly(t *testing.T) {
	data, err := backup.ParseImportFile([]byte(`{
		"version": "1.0",
		"exportDate": "2025-02-03",
		"exercises": [],
		"workouts": [{"id": "w1", "date": "2025-01-15", "createdAt": "2025-01-15T08:30"}],
		"workoutSets": [],
		"cardioSessions": [],
		"bodyWeightEntries": [{"id": "b1", "date": "2025-01-15T07:00:00", "weight": 80}]
	}`))
	require.NoError(t, err)

	result := backup.ValidateImportFile(data)
	require.True(t, result.Valid, result.Errors)

	snap, err := backup.DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), snap.Workouts[0].Date.UTC())
	assert.Equal(t, time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC), snap.Workouts[0].CreatedAt.UTC())
	assert.Equal(t, time.Date(2025, 1, 15, 7, 0, 0, 0, time.UTC), snap.BodyWeightEntries[0].Date.UTC())
	assert.Equal(t, "2025-01-15", data.(map[string]any)["workouts"].([]any)[0].(map[string]any)["date"],
		"decoding leaves the parsed data untouched")

	db := openStore(t)
	imported := backup.NewService(db).ImportData(context.Background(), snap, backup.ModeMerge)
	require.True(t, imported.Success, imported.Errors)
	assert.Equal(t, 1, imported.Imported.Workouts)
}

func TestValidateImportFileRejectsUnreadableDates(t *testing.T) {
	data, err := backup.ParseImportFile([]byte(`{
		"version": "1.0",
		"exercises": [],
		"workouts": [{"id": "w1", "date": "15/01/2025"}],
		"workoutSets": [],
		"cardioSessions": []
	}`))
	require.NoError(t, err)

	result := backup.ValidateImportFile(data)
	assert.False(t, result.Valid)
	assert.Nil(t, result.Preview)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "15/01/2025")
}

func TestSuggestedFilename(t *testing.T) {
	assert.Equal(t, "fitness-tracker-backup-2025-02-03.json", backup.SuggestedFilename(base))
}

func TestExportMarkdown(t *testing.T) {
	db := openStore(t)
	populate(t, db)
	ctx := context.Background()

	md, err := backup.NewService(db).ExportMarkdown(ctx, nil)
	require.NoError(t, err)

	assert.Contains(t, md, "# Training Log - ")
	assert.Contains(t, md, "### 2025-02-03 09:30")
	assert.Contains(t, md, "heavy")
	assert.Contains(t, md, "| 1 | Sled Push | 10 | 60.0 kg |  |")
	assert.Contains(t, md, "| 2 | Sled Push | 8 | 80.0 kg | 9.0 |")
	assert.Contains(t, md, "Volume: 1240.0 kg")
	assert.Contains(t, md, "| 2025-02-03 09:30 | treadmill | 30 min | 3.10 km |  |")
	assert.Contains(t, md, "| 2025-02-03 09:30 | 81.2 kg |  |")

	later := base.Add(24 * time.Hour)
	md, err = backup.NewService(db).ExportMarkdown(ctx, &later)
	require.NoError(t, err)
	assert.NotContains(t, md, "Sled Push")
	assert.NotContains(t, md, "treadmill")
	assert.NotContains(t, md, "81.2 kg")
}
