// ABOUTME: Personal record detection over every logged set.
// ABOUTME: A PR is the all-time heaviest set per exercise; ties keep the earliest set.
package records

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
)

// UnknownExercise names a PR whose exercise record no longer exists.
const UnknownExercise = "Unknown"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=records_test
type recordsRepo interface {
	GetExercise(ctx context.Context, id string) (*models.Exercise, error)
	GetAllExercises(ctx context.Context) ([]*models.Exercise, error)
	GetExercisesByMuscleGroup(ctx context.Context, group models.MuscleGroup) ([]*models.Exercise, error)
	GetWorkout(ctx context.Context, id string) (*models.Workout, error)
	GetAllWorkouts(ctx context.Context) ([]*models.Workout, error)
	GetSetsByExercise(ctx context.Context, exerciseID string) ([]*models.WorkoutSet, error)
	GetAllSets(ctx context.Context) ([]*models.WorkoutSet, error)
}

// PersonalRecord is the heaviest set ever logged for an exercise.
// Date is zero when the owning workout is gone.
type PersonalRecord struct {
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Date         time.Time `json:"date"`
	WorkoutID    string    `json:"workoutId"`
}

// Detector finds all-time personal records from logged sets.
type Detector struct {
	repo recordsRepo
}

// NewDetector creates a Detector over repo.
func NewDetector(repo recordsRepo) *Detector {
	return &Detector{
		repo: repo,
	}
}

// ExercisePR returns the PR for one exercise, or nil when it has no sets.
func (d *Detector) ExercisePR(ctx context.Context, exerciseID string) (*PersonalRecord, error) {
	sets, err := d.repo.GetSetsByExercise(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get sets: %w", err)
	}

	best := heaviest(sets)
	if best == nil {
		return nil, nil
	}

	pr := &PersonalRecord{
		ExerciseID:   exerciseID,
		ExerciseName: UnknownExercise,
		Weight:       best.Weight,
		Reps:         best.Reps,
		WorkoutID:    best.WorkoutID,
	}

	ex, err := d.repo.GetExercise(ctx, exerciseID)
	switch {
	case err == nil:
		pr.ExerciseName = ex.Name
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	w, err := d.repo.GetWorkout(ctx, best.WorkoutID)
	switch {
	case err == nil:
		pr.Date = w.Date
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("get workout: %w", err)
	}

	return pr, nil
}

// AllPRs returns one PR per exercise with at least one set, heaviest first.
func (d *Detector) AllPRs(ctx context.Context) ([]PersonalRecord, error) {
	sets, err := d.repo.GetAllSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sets: %w", err)
	}
	if len(sets) == 0 {
		return []PersonalRecord{}, nil
	}

	exercises, err := d.repo.GetAllExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("get exercises: %w", err)
	}
	names := make(map[string]string, len(exercises))
	for _, e := range exercises {
		names[e.ID] = e.Name
	}

	workouts, err := d.repo.GetAllWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}
	dates := make(map[string]time.Time, len(workouts))
	for _, w := range workouts {
		dates[w.ID] = w.Date
	}

	var order []string
	best := make(map[string]*models.WorkoutSet)
	for _, s := range sets {
		cur, ok := best[s.ExerciseID]
		if !ok {
			order = append(order, s.ExerciseID)
			best[s.ExerciseID] = s
			continue
		}
		if s.Weight > cur.Weight {
			best[s.ExerciseID] = s
		}
	}

	prs := make([]PersonalRecord, 0, len(order))
	for _, id := range order {
		s := best[id]
		name, ok := names[id]
		if !ok {
			name = UnknownExercise
		}
		prs = append(prs, PersonalRecord{
			ExerciseID:   id,
			ExerciseName: name,
			Weight:       s.Weight,
			Reps:         s.Reps,
			Date:         dates[s.WorkoutID],
			WorkoutID:    s.WorkoutID,
		})
	}

	sort.SliceStable(prs, func(i, j int) bool {
		return prs[i].Weight > prs[j].Weight
	})
	return prs, nil
}

// IsPR reports whether weight would set a new record. Matching the
// current record does not count.
func (d *Detector) IsPR(ctx context.Context, exerciseID string, weight float64) (bool, error) {
	sets, err := d.repo.GetSetsByExercise(ctx, exerciseID)
	if err != nil {
		return false, fmt.Errorf("get sets: %w", err)
	}
	best := heaviest(sets)
	if best == nil {
		return true, nil
	}
	return weight > best.Weight, nil
}

// PRsByMuscleGroup returns the PRs of exercises in one muscle group, heaviest first.
func (d *Detector) PRsByMuscleGroup(ctx context.Context, group models.MuscleGroup) ([]PersonalRecord, error) {
	exercises, err := d.repo.GetExercisesByMuscleGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("get exercises: %w", err)
	}
	inGroup := make(map[string]bool, len(exercises))
	for _, e := range exercises {
		inGroup[e.ID] = true
	}

	all, err := d.AllPRs(ctx)
	if err != nil {
		return nil, err
	}

	prs := make([]PersonalRecord, 0)
	for _, pr := range all {
		if inGroup[pr.ExerciseID] {
			prs = append(prs, pr)
		}
	}
	return prs, nil
}

func heaviest(sets []*models.WorkoutSet) *models.WorkoutSet {
	var best *models.WorkoutSet
	for _, s := range sets {
		if best == nil || s.Weight > best.Weight {
			best = s
		}
	}
	return best
}
