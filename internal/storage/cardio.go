// ABOUTME: CardioSession CRUD operations for SQLite storage.
// ABOUTME: Supports date windows and filtering by machine type.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

var cardioTable = &table[models.CardioSession]{
	name:   "cardio_sessions",
	entity: "cardio session",
	columns: []string{
		"id", "date", "type", "duration", "distance", "avg_speed", "avg_incline", "max_incline",
		"avg_resistance", "avg_cadence", "calories", "notes", "created_at", "updated_at",
	},
	values: func(c *models.CardioSession) []any {
		return []any{
			c.ID, formatTime(c.Date), string(c.Type), c.Duration, c.Distance, c.AvgSpeed, c.AvgIncline,
			c.MaxIncline, c.AvgResistance, c.AvgCadence, c.Calories, c.Notes,
			formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
		}
	},
	scan: scanCardio,
}

const cardioOrder = "ORDER BY date DESC, created_at DESC"

func scanCardio(s scanner) (*models.CardioSession, error) {
	var c models.CardioSession
	var date, cardioType, createdAt, updatedAt string
	var distance, speed, incline, maxIncline, resistance, cadence, calories sql.NullFloat64
	var notes sql.NullString
	err := s.Scan(&c.ID, &date, &cardioType, &c.Duration, &distance, &speed, &incline, &maxIncline,
		&resistance, &cadence, &calories, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	c.Type = models.CardioType(cardioType)
	c.Distance = nullFloat(distance)
	c.AvgSpeed = nullFloat(speed)
	c.AvgIncline = nullFloat(incline)
	c.MaxIncline = nullFloat(maxIncline)
	c.AvgResistance = nullFloat(resistance)
	c.AvgCadence = nullFloat(cadence)
	c.Calories = nullFloat(calories)
	c.Notes = nullString(notes)

	if c.Date, err = parseTime(date); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAllCardioSessions returns every session, most recent first.
func (d *DB) GetAllCardioSessions(ctx context.Context) ([]*models.CardioSession, error) {
	return cardioTable.list(ctx, d.db, cardioOrder)
}

// GetCardioSession returns one session by ID.
func (d *DB) GetCardioSession(ctx context.Context, id string) (*models.CardioSession, error) {
	return cardioTable.get(ctx, d.db, id)
}

// GetCardioSessionsByDateRange returns sessions inside the inclusive window.
func (d *DB) GetCardioSessionsByDateRange(ctx context.Context, rng models.DateRange) ([]*models.CardioSession, error) {
	where, args := rangeWhere("date", rng)
	return cardioTable.list(ctx, d.db, join(where, cardioOrder), args...)
}

// GetCardioSessionsByType returns sessions of one machine type.
func (d *DB) GetCardioSessionsByType(ctx context.Context, cardioType models.CardioType) ([]*models.CardioSession, error) {
	return cardioTable.list(ctx, d.db, "WHERE type = ? "+cardioOrder, string(cardioType))
}

// FindCardioSessions filters by optional type and window in one scan.
func (d *DB) FindCardioSessions(ctx context.Context, cardioType models.CardioType, rng models.DateRange) ([]*models.CardioSession, error) {
	var extra []string
	var args []any
	if cardioType != "" {
		extra = append(extra, "type = ?")
		args = append(args, string(cardioType))
	}
	where, rangeArgs := rangeWhere("date", rng, extra...)
	return cardioTable.list(ctx, d.db, join(where, cardioOrder), append(args, rangeArgs...)...)
}

// AddCardioSession stores a new session and returns its ID.
func (d *DB) AddCardioSession(ctx context.Context, c *models.CardioSession) (string, error) {
	now := d.clock.Now()
	c.ID = d.ids.NewID()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Date.IsZero() {
		c.Date = now
	}
	if err := cardioTable.insert(ctx, d.db, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

// CardioSessionUpdate holds the fields to change. Nil fields are left alone.
type CardioSessionUpdate struct {
	Date          *time.Time
	Type          *models.CardioType
	Duration      *int
	Distance      *float64
	AvgSpeed      *float64
	AvgIncline    *float64
	MaxIncline    *float64
	AvgResistance *float64
	AvgCadence    *float64
	Calories      *float64
	Notes         *string
}

// UpdateCardioSession merges changes and moves UpdatedAt strictly forward.
func (d *DB) UpdateCardioSession(ctx context.Context, id string, u CardioSessionUpdate) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		c, err := cardioTable.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if u.Date != nil {
			c.Date = *u.Date
		}
		if u.Type != nil {
			c.Type = *u.Type
		}
		if u.Duration != nil {
			c.Duration = *u.Duration
		}
		mergeFloat(&c.Distance, u.Distance)
		mergeFloat(&c.AvgSpeed, u.AvgSpeed)
		mergeFloat(&c.AvgIncline, u.AvgIncline)
		mergeFloat(&c.MaxIncline, u.MaxIncline)
		mergeFloat(&c.AvgResistance, u.AvgResistance)
		mergeFloat(&c.AvgCadence, u.AvgCadence)
		mergeFloat(&c.Calories, u.Calories)
		if u.Notes != nil {
			c.Notes = u.Notes
		}
		c.UpdatedAt = d.clock.After(c.UpdatedAt)
		return cardioTable.update(ctx, tx, c)
	})
}

// DeleteCardioSession removes one session.
func (d *DB) DeleteCardioSession(ctx context.Context, id string) error {
	if err := cardioTable.delete(ctx, d.db, id); err != nil {
		return fmt.Errorf("delete cardio session: %w", err)
	}
	return nil
}

// ResolveCardioSessionID expands an ID prefix to a full session ID.
func (d *DB) ResolveCardioSessionID(ctx context.Context, idOrPrefix string) (string, error) {
	return cardioTable.resolveID(ctx, d.db, idOrPrefix)
}

func mergeFloat(dst **float64, src *float64) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
