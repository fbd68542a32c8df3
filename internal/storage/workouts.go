// ABOUTME: Workout CRUD operations for SQLite storage.
// ABOUTME: Deleting a workout removes its sets in the same transaction.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

var workoutsTable = &table[models.Workout]{
	name:    "workouts",
	entity:  "workout",
	columns: []string{"id", "date", "notes", "created_at", "updated_at"},
	values: func(w *models.Workout) []any {
		return []any{w.ID, formatTime(w.Date), w.Notes, formatTime(w.CreatedAt), formatTime(w.UpdatedAt)}
	},
	scan: scanWorkout,
}

const workoutOrder = "ORDER BY date DESC, created_at DESC"

func scanWorkout(s scanner) (*models.Workout, error) {
	var w models.Workout
	var date, createdAt, updatedAt string
	var notes sql.NullString
	if err := s.Scan(&w.ID, &date, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	w.Notes = nullString(notes)

	var err error
	if w.Date, err = parseTime(date); err != nil {
		return nil, err
	}
	if w.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if w.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// GetAllWorkouts returns every workout, most recent first.
func (d *DB) GetAllWorkouts(ctx context.Context) ([]*models.Workout, error) {
	return workoutsTable.list(ctx, d.db, workoutOrder)
}

// GetWorkout returns one workout by ID.
func (d *DB) GetWorkout(ctx context.Context, id string) (*models.Workout, error) {
	return workoutsTable.get(ctx, d.db, id)
}

// GetWorkoutsByDateRange returns workouts inside the inclusive window, most recent first.
func (d *DB) GetWorkoutsByDateRange(ctx context.Context, rng models.DateRange) ([]*models.Workout, error) {
	where, args := rangeWhere("date", rng)
	return workoutsTable.list(ctx, d.db, join(where, workoutOrder), args...)
}

// AddWorkout stores a new workout and returns its ID.
func (d *DB) AddWorkout(ctx context.Context, w *models.Workout) (string, error) {
	now := d.clock.Now()
	w.ID = d.ids.NewID()
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.Date.IsZero() {
		w.Date = now
	}
	if err := workoutsTable.insert(ctx, d.db, w); err != nil {
		return "", err
	}
	return w.ID, nil
}

// WorkoutUpdate holds the fields to change. Nil fields are left alone.
type WorkoutUpdate struct {
	Date  *time.Time
	Notes *string
}

// UpdateWorkout merges changes and moves UpdatedAt strictly forward.
func (d *DB) UpdateWorkout(ctx context.Context, id string, u WorkoutUpdate) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		w, err := workoutsTable.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if u.Date != nil {
			w.Date = *u.Date
		}
		if u.Notes != nil {
			w.Notes = u.Notes
		}
		w.UpdatedAt = d.clock.After(w.UpdatedAt)
		return workoutsTable.update(ctx, tx, w)
	})
}

// DeleteWorkout removes a workout and all of its sets atomically.
func (d *DB) DeleteWorkout(ctx context.Context, id string) error {
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := setsTable.deleteWhere(ctx, tx, "WHERE workout_id = ?", id); err != nil {
			return err
		}
		return workoutsTable.delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// ResolveWorkoutID expands an ID prefix to a full workout ID.
func (d *DB) ResolveWorkoutID(ctx context.Context, idOrPrefix string) (string, error) {
	return workoutsTable.resolveID(ctx, d.db, idOrPrefix)
}
