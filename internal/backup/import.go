// ABOUTME: Transactional snapshot import under merge or replace semantics.
package backup

import (
	"context"
	"fmt"

	"github.com/harperreed/fitlog/internal/storage"
	log "github.com/sirupsen/logrus"
)

// ImportData writes snap in a single transaction. Replace mode first clears
// workouts, sets, cardio sessions, and custom exercises. Body weight entries
// are upserted when present and never cleared.
func (s *Service) ImportData(ctx context.Context, snap *Snapshot, mode ImportMode) *ImportResult {
	result := &ImportResult{Mode: mode, Errors: []string{}}
	if !mode.IsValid() {
		result.Errors = append(result.Errors, fmt.Sprintf("unknown import mode: %q", mode))
		return result
	}
	if snap == nil {
		result.Errors = append(result.Errors, "no snapshot to import")
		return result
	}

	var counts ImportCounts
	err := s.store.RunInTx(ctx, func(tx *storage.Tx) error {
		if mode == ModeReplace {
			if err := clearForReplace(ctx, tx); err != nil {
				return err
			}
		}

		var err error
		if counts.Exercises, err = tx.UpsertExercises(ctx, snap.Exercises); err != nil {
			return err
		}
		if counts.Workouts, err = tx.UpsertWorkouts(ctx, snap.Workouts); err != nil {
			return err
		}
		if counts.WorkoutSets, err = tx.UpsertWorkoutSets(ctx, snap.WorkoutSets); err != nil {
			return err
		}
		if counts.CardioSessions, err = tx.UpsertCardioSessions(ctx, snap.CardioSessions); err != nil {
			return err
		}
		if counts.BodyWeightEntries, err = tx.UpsertBodyWeightEntries(ctx, snap.BodyWeightEntries); err != nil {
			return err
		}
		if snap.Settings != nil {
			if err := tx.UpsertSettings(ctx, snap.Settings); err != nil {
				return err
			}
			counts.Settings = true
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("mode", mode).Warn("import failed, rolled back")
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	log.WithFields(log.Fields{
		"mode":           mode,
		"exercises":      counts.Exercises,
		"workouts":       counts.Workouts,
		"workoutSets":    counts.WorkoutSets,
		"cardioSessions": counts.CardioSessions,
	}).Debug("imported snapshot")

	result.Success = true
	result.Imported = counts
	return result
}

func clearForReplace(ctx context.Context, tx *storage.Tx) error {
	if _, err := tx.ClearWorkoutSets(ctx); err != nil {
		return err
	}
	if _, err := tx.ClearWorkouts(ctx); err != nil {
		return err
	}
	if _, err := tx.ClearCardioSessions(ctx); err != nil {
		return err
	}
	if _, err := tx.DeleteCustomExercises(ctx); err != nil {
		return err
	}
	return nil
}
