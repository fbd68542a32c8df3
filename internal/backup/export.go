// ABOUTME: Snapshot export to structs, JSON, and YAML.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type store interface {
	GetAllExercises(ctx context.Context) ([]*models.Exercise, error)
	GetCustomExercises(ctx context.Context) ([]*models.Exercise, error)
	GetAllWorkouts(ctx context.Context) ([]*models.Workout, error)
	GetAllSets(ctx context.Context) ([]*models.WorkoutSet, error)
	GetAllCardioSessions(ctx context.Context) ([]*models.CardioSession, error)
	GetAllBodyWeightEntries(ctx context.Context) ([]*models.BodyWeightEntry, error)
	FindSettings(ctx context.Context) (*models.Settings, error)
	RunInTx(ctx context.Context, fn func(tx *storage.Tx) error) error
}

// Service exports and imports snapshots against a store.
type Service struct {
	store store
	now   func() time.Time
}

// NewService returns a Service reading from and writing to store.
func NewService(store store) *Service {
	return &Service{store: store, now: time.Now}
}

// ExportAllData reads every table into a snapshot.
func (s *Service) ExportAllData(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Version:    SnapshotVersion,
		ExportDate: s.now().UTC(),
	}

	var err error
	if snap.Exercises, err = s.store.GetCustomExercises(ctx); err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}
	if snap.Workouts, err = s.store.GetAllWorkouts(ctx); err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	if snap.WorkoutSets, err = s.store.GetAllSets(ctx); err != nil {
		return nil, fmt.Errorf("export sets: %w", err)
	}
	if snap.CardioSessions, err = s.store.GetAllCardioSessions(ctx); err != nil {
		return nil, fmt.Errorf("export cardio sessions: %w", err)
	}
	if snap.BodyWeightEntries, err = s.store.GetAllBodyWeightEntries(ctx); err != nil {
		return nil, fmt.Errorf("export body weight: %w", err)
	}
	if snap.Settings, err = s.store.FindSettings(ctx); err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}

	log.WithFields(log.Fields{
		"exercises":      len(snap.Exercises),
		"workouts":       len(snap.Workouts),
		"workoutSets":    len(snap.WorkoutSets),
		"cardioSessions": len(snap.CardioSessions),
	}).Debug("exported snapshot")

	return snap, nil
}

// ExportJSON renders the snapshot as indented JSON.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	snap, err := s.ExportAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

// ExportYAML renders the snapshot as YAML.
func (s *Service) ExportYAML(ctx context.Context) ([]byte, error) {
	snap, err := s.ExportAllData(ctx)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(snap)
}
