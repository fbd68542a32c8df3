// ABOUTME: Workout and WorkoutSet models for strength training sessions.
// ABOUTME: A workout owns its sets; sets reference exercises by ID.
package models

import "time"

// Workout represents a strength training session on a given date.
type Workout struct {
	ID        string    `json:"id" yaml:"id"`
	Date      time.Time `json:"date" yaml:"date"`
	Notes     *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NewWorkout creates a workout for the given date.
func NewWorkout(date time.Time) *Workout {
	return &Workout{Date: date}
}

// WithNotes sets notes on the workout.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = &notes
	return w
}

// WorkoutSet is one set of an exercise inside a workout.
// SetNumber orders sets for display and is not unique.
type WorkoutSet struct {
	ID         string   `json:"id" yaml:"id"`
	WorkoutID  string   `json:"workoutId" yaml:"workoutId"`
	ExerciseID string   `json:"exerciseId" yaml:"exerciseId"`
	SetNumber  int      `json:"setNumber" yaml:"setNumber"`
	Reps       int      `json:"reps" yaml:"reps"`
	Weight     float64  `json:"weight" yaml:"weight"`
	RPE        *float64 `json:"rpe,omitempty" yaml:"rpe,omitempty"`
}

// NewWorkoutSet creates a set of reps at weight for an exercise.
func NewWorkoutSet(workoutID, exerciseID string, setNumber, reps int, weight float64) *WorkoutSet {
	return &WorkoutSet{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		SetNumber:  setNumber,
		Reps:       reps,
		Weight:     weight,
	}
}

// WithRPE sets the rate of perceived exertion.
func (s *WorkoutSet) WithRPE(rpe float64) *WorkoutSet {
	s.RPE = &rpe
	return s
}

// Volume returns reps times weight.
func (s *WorkoutSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}
