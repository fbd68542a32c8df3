// ABOUTME: Tests for catalog seeding and reseeding.
package storage

import (
	"context"
	"testing"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedExercisesIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seeded, err := db.IsSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	n, err := db.SeedExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, CatalogSize(), n)

	n, err = db.SeedExercises(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := db.GetAllExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, all, CatalogSize())

	seeded, err = db.IsSeeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestSeedSkipsWhenAnyBuiltInExists(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.RunInTx(ctx, func(tx *Tx) error {
		_, err := tx.UpsertExercises(ctx, []*models.Exercise{{
			ID: "builtin-1", Name: "Bench Press", MuscleGroup: models.MuscleChest, EquipmentType: models.EquipmentBarbell,
		}})
		return err
	}))

	n, err := db.SeedExercises(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	seeded, err := db.IsSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded, "a partial catalog is not fully seeded")
}

func TestCustomExercisesDoNotBlockSeeding(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.AddExercise(ctx, models.NewExercise("Sled Push", models.MuscleLegs, models.EquipmentOther))
	require.NoError(t, err)

	n, err := db.SeedExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, CatalogSize(), n)
}

func TestReseedRemovesCustomExercises(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.SeedExercises(ctx)
	require.NoError(t, err)
	_, err = db.AddExercise(ctx, models.NewExercise("Sled Push", models.MuscleLegs, models.EquipmentOther))
	require.NoError(t, err)

	n, err := db.ReseedExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, CatalogSize(), n)

	custom, err := db.GetCustomExercises(ctx)
	require.NoError(t, err)
	assert.Empty(t, custom)

	all, err := db.GetAllExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, all, CatalogSize())
}

func TestCatalogCoversEveryMuscleGroup(t *testing.T) {
	seen := make(map[models.MuscleGroup]int)
	names := make(map[string]bool)
	for _, c := range exerciseCatalog {
		seen[c.group]++
		assert.False(t, names[c.name], "duplicate catalog name %s", c.name)
		names[c.name] = true
		assert.True(t, models.IsValidEquipmentType(string(c.equipment)), c.name)
	}
	for _, g := range models.AllMuscleGroups {
		assert.NotZero(t, seen[g], "no catalog entries for %s", g)
	}
	assert.GreaterOrEqual(t, CatalogSize(), 150)
}
