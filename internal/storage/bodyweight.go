// ABOUTME: BodyWeightEntry CRUD operations for SQLite storage.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

var bodyWeightTable = &table[models.BodyWeightEntry]{
	name:    "body_weight_entries",
	entity:  "body weight entry",
	columns: []string{"id", "date", "weight", "notes"},
	values: func(b *models.BodyWeightEntry) []any {
		return []any{b.ID, formatTime(b.Date), b.Weight, b.Notes}
	},
	scan: scanBodyWeight,
}

const bodyWeightOrder = "ORDER BY date DESC, rowid DESC"

func scanBodyWeight(s scanner) (*models.BodyWeightEntry, error) {
	var b models.BodyWeightEntry
	var date string
	var notes sql.NullString
	if err := s.Scan(&b.ID, &date, &b.Weight, &notes); err != nil {
		return nil, err
	}
	b.Notes = nullString(notes)

	var err error
	if b.Date, err = parseTime(date); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetAllBodyWeightEntries returns every entry, most recent first.
func (d *DB) GetAllBodyWeightEntries(ctx context.Context) ([]*models.BodyWeightEntry, error) {
	return bodyWeightTable.list(ctx, d.db, bodyWeightOrder)
}

// GetBodyWeightEntry retrieves an entry by ID.
func (d *DB) GetBodyWeightEntry(ctx context.Context, id string) (*models.BodyWeightEntry, error) {
	return bodyWeightTable.get(ctx, d.db, id)
}

// GetBodyWeightByDateRange returns entries inside the inclusive window, most recent first.
func (d *DB) GetBodyWeightByDateRange(ctx context.Context, rng models.DateRange) ([]*models.BodyWeightEntry, error) {
	where, args := rangeWhere("date", rng)
	return bodyWeightTable.list(ctx, d.db, join(where, bodyWeightOrder), args...)
}

// AddBodyWeightEntry stores a new entry and returns its ID.
func (d *DB) AddBodyWeightEntry(ctx context.Context, b *models.BodyWeightEntry) (string, error) {
	b.ID = d.ids.NewID()
	if b.Date.IsZero() {
		b.Date = d.clock.Now()
	}
	if err := bodyWeightTable.insert(ctx, d.db, b); err != nil {
		return "", err
	}
	return b.ID, nil
}

// BodyWeightUpdate holds the fields to change. Nil fields are left alone.
type BodyWeightUpdate struct {
	Date   *time.Time
	Weight *float64
	Notes  *string
}

// UpdateBodyWeightEntry applies the non-nil fields of u.
func (d *DB) UpdateBodyWeightEntry(ctx context.Context, id string, u BodyWeightUpdate) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		b, err := bodyWeightTable.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if u.Date != nil {
			b.Date = *u.Date
		}
		if u.Weight != nil {
			b.Weight = *u.Weight
		}
		if u.Notes != nil {
			b.Notes = u.Notes
		}
		return bodyWeightTable.update(ctx, tx, b)
	})
}

// DeleteBodyWeightEntry removes an entry by ID.
func (d *DB) DeleteBodyWeightEntry(ctx context.Context, id string) error {
	if err := bodyWeightTable.delete(ctx, d.db, id); err != nil {
		return fmt.Errorf("delete body weight entry: %w", err)
	}
	return nil
}

// ResolveBodyWeightEntryID expands an ID prefix to a full entry ID.
func (d *DB) ResolveBodyWeightEntryID(ctx context.Context, idOrPrefix string) (string, error) {
	return bodyWeightTable.resolveID(ctx, d.db, idOrPrefix)
}
