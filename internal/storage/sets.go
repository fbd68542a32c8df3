// ABOUTME: WorkoutSet CRUD operations for SQLite storage.
// ABOUTME: Sets come back in insertion order unless ordered by set number.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
)

var setsTable = &table[models.WorkoutSet]{
	name:    "workout_sets",
	entity:  "workout set",
	columns: []string{"id", "workout_id", "exercise_id", "set_number", "reps", "weight", "rpe"},
	values: func(s *models.WorkoutSet) []any {
		return []any{s.ID, s.WorkoutID, s.ExerciseID, s.SetNumber, s.Reps, s.Weight, s.RPE}
	},
	scan: scanSet,
}

func scanSet(s scanner) (*models.WorkoutSet, error) {
	var ws models.WorkoutSet
	var rpe sql.NullFloat64
	if err := s.Scan(&ws.ID, &ws.WorkoutID, &ws.ExerciseID, &ws.SetNumber, &ws.Reps, &ws.Weight, &rpe); err != nil {
		return nil, err
	}
	ws.RPE = nullFloat(rpe)
	return &ws, nil
}

// GetSetsByWorkout returns a workout's sets by set number.
func (d *DB) GetSetsByWorkout(ctx context.Context, workoutID string) ([]*models.WorkoutSet, error) {
	return setsTable.list(ctx, d.db, "WHERE workout_id = ? ORDER BY set_number ASC, rowid ASC", workoutID)
}

// GetSetsByExercise returns every set logged for an exercise in insertion order.
func (d *DB) GetSetsByExercise(ctx context.Context, exerciseID string) ([]*models.WorkoutSet, error) {
	return setsTable.list(ctx, d.db, "WHERE exercise_id = ? ORDER BY rowid ASC", exerciseID)
}

// GetAllSets returns every set in insertion order.
func (d *DB) GetAllSets(ctx context.Context) ([]*models.WorkoutSet, error) {
	return setsTable.list(ctx, d.db, "ORDER BY rowid ASC")
}

// GetSet returns one set by ID.
func (d *DB) GetSet(ctx context.Context, id string) (*models.WorkoutSet, error) {
	return setsTable.get(ctx, d.db, id)
}

// AddSet stores a new set and returns its ID. The owning workout is not checked.
func (d *DB) AddSet(ctx context.Context, s *models.WorkoutSet) (string, error) {
	s.ID = d.ids.NewID()
	if err := setsTable.insert(ctx, d.db, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

// SetUpdate holds the fields to change. Nil fields are left alone.
type SetUpdate struct {
	ExerciseID *string
	SetNumber  *int
	Reps       *int
	Weight     *float64
	RPE        *float64
}

// UpdateSet merges changes into an existing set.
func (d *DB) UpdateSet(ctx context.Context, id string, u SetUpdate) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		s, err := setsTable.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if u.ExerciseID != nil {
			s.ExerciseID = *u.ExerciseID
		}
		if u.SetNumber != nil {
			s.SetNumber = *u.SetNumber
		}
		if u.Reps != nil {
			s.Reps = *u.Reps
		}
		if u.Weight != nil {
			s.Weight = *u.Weight
		}
		if u.RPE != nil {
			s.RPE = u.RPE
		}
		return setsTable.update(ctx, tx, s)
	})
}

// DeleteSet removes one set.
func (d *DB) DeleteSet(ctx context.Context, id string) error {
	if err := setsTable.delete(ctx, d.db, id); err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	return nil
}

// ResolveSetID expands an ID prefix to a full set ID.
func (d *DB) ResolveSetID(ctx context.Context, idOrPrefix string) (string, error) {
	return setsTable.resolveID(ctx, d.db, idOrPrefix)
}
