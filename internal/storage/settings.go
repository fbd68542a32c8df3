// ABOUTME: Settings singleton storage with lazy initialization.
// ABOUTME: Creating the defaults never overwrites an existing record.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
)

var settingsTable = &table[models.Settings]{
	name:    "settings",
	entity:  "settings",
	columns: []string{"id", "weight_unit", "distance_unit", "theme", "rest_timer_default", "barbell_weight"},
	values: func(s *models.Settings) []any {
		return []any{s.ID, string(s.WeightUnit), string(s.DistanceUnit), string(s.Theme), s.RestTimerDefault, s.BarbellWeight}
	},
	scan: scanSettings,
}

func scanSettings(sc scanner) (*models.Settings, error) {
	var s models.Settings
	var weightUnit, distanceUnit, theme string
	if err := sc.Scan(&s.ID, &weightUnit, &distanceUnit, &theme, &s.RestTimerDefault, &s.BarbellWeight); err != nil {
		return nil, err
	}
	s.WeightUnit = models.WeightUnit(weightUnit)
	s.DistanceUnit = models.DistanceUnit(distanceUnit)
	s.Theme = models.Theme(theme)
	return &s, nil
}

// GetSettings returns the settings, creating the defaults on first access.
func (d *DB) GetSettings(ctx context.Context) (*models.Settings, error) {
	var s *models.Settings
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		s, err = getOrCreateSettings(ctx, tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// FindSettings returns the stored settings or nil when none exist yet.
func (d *DB) FindSettings(ctx context.Context) (*models.Settings, error) {
	s, err := settingsTable.get(ctx, d.db, models.SettingsID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return s, err
}

// SettingsUpdate holds the fields to change. Nil fields are left alone.
type SettingsUpdate struct {
	WeightUnit       *models.WeightUnit
	DistanceUnit     *models.DistanceUnit
	Theme            *models.Theme
	RestTimerDefault *int
	BarbellWeight    *float64
}

// UpdateSettings merges changes into the settings and returns the result.
func (d *DB) UpdateSettings(ctx context.Context, u SettingsUpdate) (*models.Settings, error) {
	var s *models.Settings
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if s, err = getOrCreateSettings(ctx, tx); err != nil {
			return err
		}
		if u.WeightUnit != nil {
			s.WeightUnit = *u.WeightUnit
		}
		if u.DistanceUnit != nil {
			s.DistanceUnit = *u.DistanceUnit
		}
		if u.Theme != nil {
			s.Theme = *u.Theme
		}
		if u.RestTimerDefault != nil {
			s.RestTimerDefault = *u.RestTimerDefault
		}
		if u.BarbellWeight != nil {
			s.BarbellWeight = *u.BarbellWeight
		}
		return settingsTable.update(ctx, tx, s)
	})
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return s, nil
}

func getOrCreateSettings(ctx context.Context, q querier) (*models.Settings, error) {
	def := models.DefaultSettings()
	query := settingsTable.insertSQL() + " ON CONFLICT(id) DO NOTHING"
	if _, err := q.ExecContext(ctx, query, settingsTable.values(def)...); err != nil {
		return nil, err
	}
	return settingsTable.get(ctx, q, models.SettingsID)
}
