// ABOUTME: Multi-table transactions.
// ABOUTME: Tx exposes the bulk writes import needs; everything commits or nothing does.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
)

func (d *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Tx is a write transaction spanning every table.
type Tx struct {
	tx *sql.Tx
}

// RunInTx runs fn inside one transaction. Any error rolls everything back.
func (d *DB) RunInTx(ctx context.Context, fn func(tx *Tx) error) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		return fn(&Tx{tx: tx})
	})
}

// UpsertExercises inserts or replaces exercises by ID and returns how many were written.
func (t *Tx) UpsertExercises(ctx context.Context, es []*models.Exercise) (int, error) {
	return exercisesTable.upsertAll(ctx, t.tx, es)
}

// UpsertWorkouts inserts or replaces workouts by ID.
func (t *Tx) UpsertWorkouts(ctx context.Context, ws []*models.Workout) (int, error) {
	return workoutsTable.upsertAll(ctx, t.tx, ws)
}

// UpsertWorkoutSets inserts or replaces sets by ID.
func (t *Tx) UpsertWorkoutSets(ctx context.Context, ss []*models.WorkoutSet) (int, error) {
	return setsTable.upsertAll(ctx, t.tx, ss)
}

// UpsertCardioSessions inserts or replaces cardio sessions by ID.
func (t *Tx) UpsertCardioSessions(ctx context.Context, cs []*models.CardioSession) (int, error) {
	return cardioTable.upsertAll(ctx, t.tx, cs)
}

// UpsertBodyWeightEntries inserts or replaces body weight entries by ID.
func (t *Tx) UpsertBodyWeightEntries(ctx context.Context, bs []*models.BodyWeightEntry) (int, error) {
	return bodyWeightTable.upsertAll(ctx, t.tx, bs)
}

// UpsertSettings writes the singleton. The key is forced to the fixed id.
func (t *Tx) UpsertSettings(ctx context.Context, s *models.Settings) error {
	cp := *s
	cp.ID = models.SettingsID
	return settingsTable.upsert(ctx, t.tx, &cp)
}

// ClearWorkouts deletes every workout and returns the number removed.
func (t *Tx) ClearWorkouts(ctx context.Context) (int64, error) {
	return workoutsTable.deleteWhere(ctx, t.tx, "")
}

// ClearWorkoutSets deletes every set.
func (t *Tx) ClearWorkoutSets(ctx context.Context) (int64, error) {
	return setsTable.deleteWhere(ctx, t.tx, "")
}

// ClearCardioSessions deletes every cardio session.
func (t *Tx) ClearCardioSessions(ctx context.Context) (int64, error) {
	return cardioTable.deleteWhere(ctx, t.tx, "")
}

// DeleteCustomExercises removes user-created exercises, keeping the catalog.
func (t *Tx) DeleteCustomExercises(ctx context.Context) (int64, error) {
	return exercisesTable.deleteWhere(ctx, t.tx, "WHERE is_custom = 1")
}
