// ABOUTME: Whole-history summary statistics and windowed cardio summaries.
// ABOUTME: Weekly rates divide by the span in weeks, floored at one week.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

const week = 7 * 24 * time.Hour

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test
type statsRepo interface {
	GetAllWorkouts(ctx context.Context) ([]*models.Workout, error)
	GetAllSets(ctx context.Context) ([]*models.WorkoutSet, error)
	GetAllExercises(ctx context.Context) ([]*models.Exercise, error)
	GetAllCardioSessions(ctx context.Context) ([]*models.CardioSession, error)
	FindCardioSessions(ctx context.Context, cardioType models.CardioType, rng models.DateRange) ([]*models.CardioSession, error)
}

// Summary covers the whole training history. Durations are seconds.
type Summary struct {
	TotalWorkouts          int                 `json:"totalWorkouts"`
	TotalCardioSessions    int                 `json:"totalCardioSessions"`
	TotalVolume            float64             `json:"totalVolume"`
	TotalCardioTime        int                 `json:"totalCardioTime"`
	TotalCardioDistance    float64             `json:"totalCardioDistance"`
	WorkoutsPerWeek        float64             `json:"workoutsPerWeek"`
	CardioPerWeek          float64             `json:"cardioPerWeek"`
	MostTrainedMuscleGroup *models.MuscleGroup `json:"mostTrainedMuscleGroup"`
}

// CardioSummary covers the sessions matching a type and window.
type CardioSummary struct {
	TotalSessions   int     `json:"totalSessions"`
	TotalTime       int     `json:"totalTime"`
	TotalDistance   float64 `json:"totalDistance"`
	AverageDuration float64 `json:"averageDuration"`
}

// Aggregator computes training summaries from the store.
type Aggregator struct {
	repo statsRepo
}

// NewAggregator creates an Aggregator over repo.
func NewAggregator(repo statsRepo) *Aggregator {
	return &Aggregator{
		repo: repo,
	}
}

// Stats summarizes the whole history: workout and cardio counts, weekly
// rates, total volume, and the most trained muscle group.
func (a *Aggregator) Stats(ctx context.Context) (*Summary, error) {
	workouts, err := a.repo.GetAllWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}
	sets, err := a.repo.GetAllSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sets: %w", err)
	}
	sessions, err := a.repo.GetAllCardioSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cardio sessions: %w", err)
	}

	s := &Summary{
		TotalWorkouts:       len(workouts),
		TotalCardioSessions: len(sessions),
	}
	for _, set := range sets {
		s.TotalVolume += set.Volume()
	}
	for _, c := range sessions {
		s.TotalCardioTime += c.Duration
		s.TotalCardioDistance += c.DistanceOrZero()
	}

	workoutDates := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		workoutDates = append(workoutDates, w.Date)
	}
	cardioDates := make([]time.Time, 0, len(sessions))
	for _, c := range sessions {
		cardioDates = append(cardioDates, c.Date)
	}
	s.WorkoutsPerWeek = WeeklyRate(workoutDates)
	s.CardioPerWeek = WeeklyRate(cardioDates)

	if len(sets) > 0 {
		exercises, err := a.repo.GetAllExercises(ctx)
		if err != nil {
			return nil, fmt.Errorf("get exercises: %w", err)
		}
		s.MostTrainedMuscleGroup = mostTrained(sets, exercises)
	}

	return s, nil
}

// CardioStats summarizes sessions of cardioType (empty for all) inside rng.
func (a *Aggregator) CardioStats(ctx context.Context, cardioType models.CardioType, rng models.DateRange) (*CardioSummary, error) {
	sessions, err := a.repo.FindCardioSessions(ctx, cardioType, rng)
	if err != nil {
		return nil, fmt.Errorf("get cardio sessions: %w", err)
	}

	s := &CardioSummary{TotalSessions: len(sessions)}
	for _, c := range sessions {
		s.TotalTime += c.Duration
		s.TotalDistance += c.DistanceOrZero()
	}
	if s.TotalSessions > 0 {
		s.AverageDuration = float64(s.TotalTime) / float64(s.TotalSessions)
	}
	return s, nil
}

// WeeklyRate is len(dates) over the weeks between the earliest and latest
// date, treating anything shorter than a week as one week.
func WeeklyRate(dates []time.Time) float64 {
	if len(dates) == 0 {
		return 0
	}
	earliest, latest := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}
	weeks := float64(latest.Sub(earliest)) / float64(week)
	if weeks < 1 {
		weeks = 1
	}
	return float64(len(dates)) / weeks
}

// mostTrained counts sets per muscle group. Sets whose exercise is gone are
// ignored; ties go to the group seen first.
func mostTrained(sets []*models.WorkoutSet, exercises []*models.Exercise) *models.MuscleGroup {
	groups := make(map[string]models.MuscleGroup, len(exercises))
	for _, e := range exercises {
		groups[e.ID] = e.MuscleGroup
	}

	var order []models.MuscleGroup
	counts := make(map[models.MuscleGroup]int)
	for _, s := range sets {
		g, ok := groups[s.ExerciseID]
		if !ok {
			continue
		}
		if counts[g] == 0 {
			order = append(order, g)
		}
		counts[g]++
	}
	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, g := range order[1:] {
		if counts[g] > counts[best] {
			best = g
		}
	}
	return &best
}
