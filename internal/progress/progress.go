// ABOUTME: Per-day time series for strength, cardio, and body weight charts.
// ABOUTME: Days are UTC calendar days; windows are inclusive and applied before grouping.
package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test
type progressRepo interface {
	GetSetsByExercise(ctx context.Context, exerciseID string) ([]*models.WorkoutSet, error)
	GetAllSets(ctx context.Context) ([]*models.WorkoutSet, error)
	GetWorkoutsByDateRange(ctx context.Context, rng models.DateRange) ([]*models.Workout, error)
	FindCardioSessions(ctx context.Context, cardioType models.CardioType, rng models.DateRange) ([]*models.CardioSession, error)
	GetBodyWeightByDateRange(ctx context.Context, rng models.DateRange) ([]*models.BodyWeightEntry, error)
}

// WeightPoint is the heaviest set of an exercise on one day. IsPR marks the
// latest day that reached the heaviest weight inside the queried window.
type WeightPoint struct {
	Date      time.Time `json:"date"`
	MaxWeight float64   `json:"maxWeight"`
	WorkoutID string    `json:"workoutId"`
	IsPR      bool      `json:"isPR"`
}

// VolumePoint is the sum of reps times weight on one day.
type VolumePoint struct {
	Date   time.Time `json:"date"`
	Volume float64   `json:"volume"`
}

// ExerciseBest is the heaviest day of an exercise over its whole history.
type ExerciseBest struct {
	Weight float64   `json:"weight"`
	Date   time.Time `json:"date"`
}

// Aggregator builds per-day progress series from the store.
type Aggregator struct {
	repo progressRepo
}

// NewAggregator creates an Aggregator over repo.
func NewAggregator(repo progressRepo) *Aggregator {
	return &Aggregator{
		repo: repo,
	}
}

// WeightProgress groups an exercise's sets by their workout's day inside rng.
func (a *Aggregator) WeightProgress(ctx context.Context, exerciseID string, rng models.DateRange) ([]WeightPoint, error) {
	sets, err := a.repo.GetSetsByExercise(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get sets: %w", err)
	}
	workouts, err := a.workoutIndex(ctx, rng)
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]*WeightPoint)
	for _, s := range sets {
		w, ok := workouts[s.WorkoutID]
		if !ok {
			continue
		}
		d := models.DayOf(w.Date)
		p, ok := byDay[d]
		if !ok {
			byDay[d] = &WeightPoint{Date: d, MaxWeight: s.Weight, WorkoutID: s.WorkoutID}
			continue
		}
		if s.Weight > p.MaxWeight {
			p.MaxWeight = s.Weight
			p.WorkoutID = s.WorkoutID
		}
	}

	points := make([]WeightPoint, 0, len(byDay))
	for _, p := range byDay {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	markWindowPR(points)
	return points, nil
}

func markWindowPR(points []WeightPoint) {
	if len(points) == 0 {
		return
	}
	top := points[0].MaxWeight
	for _, p := range points[1:] {
		if p.MaxWeight > top {
			top = p.MaxWeight
		}
	}
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].MaxWeight == top {
			points[i].IsPR = true
			return
		}
	}
}

// ExercisePR returns the flagged point of the unwindowed weight series,
// or nil when the exercise has no sets on record.
func (a *Aggregator) ExercisePR(ctx context.Context, exerciseID string) (*ExerciseBest, error) {
	points, err := a.WeightProgress(ctx, exerciseID, models.DateRange{})
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		if p.IsPR {
			return &ExerciseBest{Weight: p.MaxWeight, Date: p.Date}, nil
		}
	}
	return nil, nil
}

// VolumeProgress sums reps times weight per day. An empty exerciseID covers every exercise.
func (a *Aggregator) VolumeProgress(ctx context.Context, exerciseID string, rng models.DateRange) ([]VolumePoint, error) {
	var sets []*models.WorkoutSet
	var err error
	if exerciseID == "" {
		sets, err = a.repo.GetAllSets(ctx)
	} else {
		sets, err = a.repo.GetSetsByExercise(ctx, exerciseID)
	}
	if err != nil {
		return nil, fmt.Errorf("get sets: %w", err)
	}
	workouts, err := a.workoutIndex(ctx, rng)
	if err != nil {
		return nil, err
	}

	totals := make(map[time.Time]float64)
	for _, s := range sets {
		w, ok := workouts[s.WorkoutID]
		if !ok {
			continue
		}
		totals[models.DayOf(w.Date)] += s.Volume()
	}

	points := make([]VolumePoint, 0, len(totals))
	for d, v := range totals {
		points = append(points, VolumePoint{Date: d, Volume: v})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

func (a *Aggregator) workoutIndex(ctx context.Context, rng models.DateRange) (map[string]*models.Workout, error) {
	workouts, err := a.repo.GetWorkoutsByDateRange(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}
	idx := make(map[string]*models.Workout, len(workouts))
	for _, w := range workouts {
		idx[w.ID] = w
	}
	return idx, nil
}

// dayGroup holds the items that fall on one UTC day, oldest first.
type dayGroup[T any] struct {
	day   time.Time
	items []T
}

// groupByDay buckets items by day, returning buckets in ascending order.
func groupByDay[T any](items []T, dateOf func(T) time.Time) []dayGroup[T] {
	sorted := append([]T(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateOf(sorted[i]).Before(dateOf(sorted[j]))
	})

	var groups []dayGroup[T]
	for _, it := range sorted {
		d := models.DayOf(dateOf(it))
		if n := len(groups); n > 0 && groups[n-1].day.Equal(d) {
			groups[n-1].items = append(groups[n-1].items, it)
			continue
		}
		groups = append(groups, dayGroup[T]{day: d, items: []T{it}})
	}
	return groups
}
