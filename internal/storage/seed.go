// ABOUTME: Idempotent seeding of the built-in exercise catalog.
// ABOUTME: Reseeding wipes every exercise, customs included, and reloads the catalog.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
	log "github.com/sirupsen/logrus"
)

// CatalogSize returns the number of built-in exercises.
func CatalogSize() int {
	return len(exerciseCatalog)
}

// SeedExercises loads the catalog when no built-in exercises exist.
// Returns the number inserted, 0 when already seeded.
func (d *DB) SeedExercises(ctx context.Context) (int, error) {
	var inserted int
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		n, err := exercisesTable.count(ctx, tx, "WHERE is_custom = 0")
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		inserted, err = d.insertCatalog(ctx, tx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("seed exercises: %w", err)
	}
	if inserted > 0 {
		log.WithField("count", inserted).Debug("seeded exercise catalog")
	}
	return inserted, nil
}

// IsSeeded reports whether the full catalog is present.
func (d *DB) IsSeeded(ctx context.Context) (bool, error) {
	n, err := exercisesTable.count(ctx, d.db, "WHERE is_custom = 0")
	if err != nil {
		return false, err
	}
	return n >= len(exerciseCatalog), nil
}

// ReseedExercises deletes every exercise, custom ones too, then reloads the catalog.
func (d *DB) ReseedExercises(ctx context.Context) (int, error) {
	var inserted int
	var removed int64
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if removed, err = exercisesTable.deleteWhere(ctx, tx, ""); err != nil {
			return err
		}
		inserted, err = d.insertCatalog(ctx, tx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("reseed exercises: %w", err)
	}
	log.WithFields(log.Fields{"removed": removed, "inserted": inserted}).Debug("reseeded exercise catalog")
	return inserted, nil
}

func (d *DB) insertCatalog(ctx context.Context, q querier) (int, error) {
	now := d.clock.Now()
	exercises := make([]*models.Exercise, 0, len(exerciseCatalog))
	for _, c := range exerciseCatalog {
		exercises = append(exercises, &models.Exercise{
			ID:            d.ids.NewID(),
			Name:          c.name,
			MuscleGroup:   c.group,
			EquipmentType: c.equipment,
			CreatedAt:     now,
		})
	}
	return exercisesTable.insertAll(ctx, q, exercises)
}
