// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: One table per entity plus the secondary indexes range scans rely on.
package storage

import "context"

// Timestamps are fixed-width UTC text so range scans compare lexically.
// There are no foreign keys: workout cascade is explicit and exercise
// deletion intentionally leaves sets behind.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS exercises (
	id TEXT PRIMARY KEY CHECK (length(id) > 0),
	name TEXT NOT NULL,
	muscle_group TEXT NOT NULL,
	equipment_type TEXT NOT NULL,
	is_custom INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS workouts (
	id TEXT PRIMARY KEY CHECK (length(id) > 0),
	date TEXT NOT NULL,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS workout_sets (
	id TEXT PRIMARY KEY CHECK (length(id) > 0),
	workout_id TEXT NOT NULL,
	exercise_id TEXT NOT NULL,
	set_number INTEGER NOT NULL CHECK (set_number > 0),
	reps INTEGER NOT NULL CHECK (reps > 0),
	weight REAL NOT NULL CHECK (weight >= 0),
	rpe REAL CHECK (rpe IS NULL OR (rpe >= 1 AND rpe <= 10))
);

CREATE TABLE IF NOT EXISTS cardio_sessions (
	id TEXT PRIMARY KEY CHECK (length(id) > 0),
	date TEXT NOT NULL,
	type TEXT NOT NULL,
	duration INTEGER NOT NULL CHECK (duration >= 0),
	distance REAL,
	avg_speed REAL,
	avg_incline REAL,
	max_incline REAL,
	avg_resistance REAL,
	avg_cadence REAL,
	calories REAL,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS body_weight_entries (
	id TEXT PRIMARY KEY CHECK (length(id) > 0),
	date TEXT NOT NULL,
	weight REAL NOT NULL,
	notes TEXT
);

CREATE TABLE IF NOT EXISTS settings (
	id TEXT PRIMARY KEY,
	weight_unit TEXT NOT NULL,
	distance_unit TEXT NOT NULL,
	theme TEXT NOT NULL,
	rest_timer_default INTEGER NOT NULL,
	barbell_weight REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_exercises_muscle_group ON exercises(muscle_group);
CREATE INDEX IF NOT EXISTS idx_exercises_is_custom ON exercises(is_custom);
CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date);
CREATE INDEX IF NOT EXISTS idx_workout_sets_workout ON workout_sets(workout_id);
CREATE INDEX IF NOT EXISTS idx_workout_sets_exercise ON workout_sets(exercise_id);
CREATE INDEX IF NOT EXISTS idx_cardio_sessions_date ON cardio_sessions(date);
CREATE INDEX IF NOT EXISTS idx_cardio_sessions_type ON cardio_sessions(type);
CREATE INDEX IF NOT EXISTS idx_body_weight_entries_date ON body_weight_entries(date);
`

// initSchema creates or updates the database schema.
func (d *DB) initSchema(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, schemaDDL)
	return err
}
