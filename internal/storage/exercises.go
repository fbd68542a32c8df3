// ABOUTME: Exercise CRUD operations for SQLite storage.
// ABOUTME: Deleting an exercise leaves its sets in place.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
)

var exercisesTable = &table[models.Exercise]{
	name:    "exercises",
	entity:  "exercise",
	columns: []string{"id", "name", "muscle_group", "equipment_type", "is_custom", "created_at"},
	values: func(e *models.Exercise) []any {
		return []any{e.ID, e.Name, string(e.MuscleGroup), string(e.EquipmentType), e.IsCustom, formatTime(e.CreatedAt)}
	},
	scan: scanExercise,
}

const exerciseOrder = "ORDER BY name COLLATE NOCASE ASC, id ASC"

func scanExercise(s scanner) (*models.Exercise, error) {
	var e models.Exercise
	var group, equipment, createdAt string
	if err := s.Scan(&e.ID, &e.Name, &group, &equipment, &e.IsCustom, &createdAt); err != nil {
		return nil, err
	}
	e.MuscleGroup = models.MuscleGroup(group)
	e.EquipmentType = models.EquipmentType(equipment)

	var err error
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetAllExercises returns every exercise sorted by name.
func (d *DB) GetAllExercises(ctx context.Context) ([]*models.Exercise, error) {
	return exercisesTable.list(ctx, d.db, exerciseOrder)
}

// GetExercise returns one exercise by ID.
func (d *DB) GetExercise(ctx context.Context, id string) (*models.Exercise, error) {
	return exercisesTable.get(ctx, d.db, id)
}

// GetExercisesByMuscleGroup returns exercises for one muscle group, sorted by name.
func (d *DB) GetExercisesByMuscleGroup(ctx context.Context, group models.MuscleGroup) ([]*models.Exercise, error) {
	return exercisesTable.list(ctx, d.db, "WHERE muscle_group = ? "+exerciseOrder, string(group))
}

// GetCustomExercises returns user-created exercises.
func (d *DB) GetCustomExercises(ctx context.Context) ([]*models.Exercise, error) {
	return exercisesTable.list(ctx, d.db, "WHERE is_custom = 1 "+exerciseOrder)
}

// SearchExercises returns exercises whose name contains query, ignoring case.
// Matching folds Unicode case in Go; SQLite's lower() only folds ASCII.
func (d *DB) SearchExercises(ctx context.Context, query string) ([]*models.Exercise, error) {
	all, err := exercisesTable.list(ctx, d.db, exerciseOrder)
	if err != nil {
		return nil, err
	}
	matches := make([]*models.Exercise, 0)
	for _, e := range all {
		if e.MatchesName(query) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// AddExercise stores a new exercise and returns its ID.
func (d *DB) AddExercise(ctx context.Context, e *models.Exercise) (string, error) {
	e.ID = d.ids.NewID()
	e.CreatedAt = d.clock.Now()
	if err := exercisesTable.insert(ctx, d.db, e); err != nil {
		return "", err
	}
	return e.ID, nil
}

// ExerciseUpdate holds the fields to change. Nil fields are left alone.
type ExerciseUpdate struct {
	Name          *string
	MuscleGroup   *models.MuscleGroup
	EquipmentType *models.EquipmentType
}

// UpdateExercise merges changes into an existing exercise.
func (d *DB) UpdateExercise(ctx context.Context, id string, u ExerciseUpdate) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		e, err := exercisesTable.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if u.Name != nil {
			e.Name = *u.Name
		}
		if u.MuscleGroup != nil {
			e.MuscleGroup = *u.MuscleGroup
		}
		if u.EquipmentType != nil {
			e.EquipmentType = *u.EquipmentType
		}
		return exercisesTable.update(ctx, tx, e)
	})
}

// DeleteExercise removes an exercise. Sets referencing it are kept.
func (d *DB) DeleteExercise(ctx context.Context, id string) error {
	if err := exercisesTable.delete(ctx, d.db, id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

// ResolveExerciseID expands an ID prefix to a full exercise ID.
func (d *DB) ResolveExerciseID(ctx context.Context, idOrPrefix string) (string, error) {
	return exercisesTable.resolveID(ctx, d.db, idOrPrefix)
}
