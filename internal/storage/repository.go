// ABOUTME: Repository interface for fitness log storage.
// ABOUTME: Defines the contract for per-entity CRUD, seeding, and transactions.
package storage

import (
	"context"

	"github.com/harperreed/fitlog/internal/models"
)

// Repository defines the storage interface for the fitness log.
type Repository interface {
	// Exercise operations
	GetAllExercises(ctx context.Context) ([]*models.Exercise, error)
	GetExercise(ctx context.Context, id string) (*models.Exercise, error)
	GetExercisesByMuscleGroup(ctx context.Context, group models.MuscleGroup) ([]*models.Exercise, error)
	GetCustomExercises(ctx context.Context) ([]*models.Exercise, error)
	SearchExercises(ctx context.Context, query string) ([]*models.Exercise, error)
	AddExercise(ctx context.Context, e *models.Exercise) (string, error)
	UpdateExercise(ctx context.Context, id string, u ExerciseUpdate) error
	DeleteExercise(ctx context.Context, id string) error

	// Workout operations
	GetAllWorkouts(ctx context.Context) ([]*models.Workout, error)
	GetWorkout(ctx context.Context, id string) (*models.Workout, error)
	GetWorkoutsByDateRange(ctx context.Context, rng models.DateRange) ([]*models.Workout, error)
	AddWorkout(ctx context.Context, w *models.Workout) (string, error)
	UpdateWorkout(ctx context.Context, id string, u WorkoutUpdate) error
	DeleteWorkout(ctx context.Context, id string) error

	// Set operations
	GetSetsByWorkout(ctx context.Context, workoutID string) ([]*models.WorkoutSet, error)
	GetSetsByExercise(ctx context.Context, exerciseID string) ([]*models.WorkoutSet, error)
	GetAllSets(ctx context.Context) ([]*models.WorkoutSet, error)
	GetSet(ctx context.Context, id string) (*models.WorkoutSet, error)
	AddSet(ctx context.Context, s *models.WorkoutSet) (string, error)
	UpdateSet(ctx context.Context, id string, u SetUpdate) error
	DeleteSet(ctx context.Context, id string) error

	// Cardio operations
	GetAllCardioSessions(ctx context.Context) ([]*models.CardioSession, error)
	GetCardioSession(ctx context.Context, id string) (*models.CardioSession, error)
	GetCardioSessionsByDateRange(ctx context.Context, rng models.DateRange) ([]*models.CardioSession, error)
	GetCardioSessionsByType(ctx context.Context, cardioType models.CardioType) ([]*models.CardioSession, error)
	FindCardioSessions(ctx context.Context, cardioType models.CardioType, rng models.DateRange) ([]*models.CardioSession, error)
	AddCardioSession(ctx context.Context, c *models.CardioSession) (string, error)
	UpdateCardioSession(ctx context.Context, id string, u CardioSessionUpdate) error
	DeleteCardioSession(ctx context.Context, id string) error

	// Body weight operations
	GetAllBodyWeightEntries(ctx context.Context) ([]*models.BodyWeightEntry, error)
	GetBodyWeightEntry(ctx context.Context, id string) (*models.BodyWeightEntry, error)
	GetBodyWeightByDateRange(ctx context.Context, rng models.DateRange) ([]*models.BodyWeightEntry, error)
	AddBodyWeightEntry(ctx context.Context, b *models.BodyWeightEntry) (string, error)
	UpdateBodyWeightEntry(ctx context.Context, id string, u BodyWeightUpdate) error
	DeleteBodyWeightEntry(ctx context.Context, id string) error

	// Settings
	GetSettings(ctx context.Context) (*models.Settings, error)
	FindSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, u SettingsUpdate) (*models.Settings, error)

	// ID prefix resolution
	ResolveExerciseID(ctx context.Context, idOrPrefix string) (string, error)
	ResolveWorkoutID(ctx context.Context, idOrPrefix string) (string, error)
	ResolveSetID(ctx context.Context, idOrPrefix string) (string, error)
	ResolveCardioSessionID(ctx context.Context, idOrPrefix string) (string, error)
	ResolveBodyWeightEntryID(ctx context.Context, idOrPrefix string) (string, error)

	// Seeding
	SeedExercises(ctx context.Context) (int, error)
	IsSeeded(ctx context.Context) (bool, error)
	ReseedExercises(ctx context.Context) (int, error)

	// Transactions
	RunInTx(ctx context.Context, fn func(tx *Tx) error) error

	// Lifecycle
	Close() error
}

var _ Repository = (*DB)(nil)
