// ABOUTME: Exercise model plus MuscleGroup and EquipmentType enums.
// ABOUTME: Exercises are either built-in catalog entries or user-created customs.
package models

import (
	"strings"
	"time"
)

// MuscleGroup is the primary muscle group an exercise trains.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleCore      MuscleGroup = "core"
)

// AllMuscleGroups lists every valid muscle group in display order.
var AllMuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders, MuscleArms, MuscleCore,
}

// IsValidMuscleGroup checks if a string names a muscle group.
func IsValidMuscleGroup(s string) bool {
	for _, g := range AllMuscleGroups {
		if string(g) == s {
			return true
		}
	}
	return false
}

// EquipmentType is the equipment an exercise is performed with.
type EquipmentType string

const (
	EquipmentBarbell    EquipmentType = "barbell"
	EquipmentDumbbell   EquipmentType = "dumbbell"
	EquipmentMachine    EquipmentType = "machine"
	EquipmentCable      EquipmentType = "cable"
	EquipmentBodyweight EquipmentType = "bodyweight"
	EquipmentKettlebell EquipmentType = "kettlebell"
	EquipmentOther      EquipmentType = "other"
)

// AllEquipmentTypes lists every valid equipment type.
var AllEquipmentTypes = []EquipmentType{
	EquipmentBarbell, EquipmentDumbbell, EquipmentMachine, EquipmentCable,
	EquipmentBodyweight, EquipmentKettlebell, EquipmentOther,
}

// IsValidEquipmentType checks if a string names an equipment type.
func IsValidEquipmentType(s string) bool {
	for _, e := range AllEquipmentTypes {
		if string(e) == s {
			return true
		}
	}
	return false
}

// Exercise is a movement that sets are logged against.
type Exercise struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	MuscleGroup   MuscleGroup   `json:"muscleGroup" yaml:"muscleGroup"`
	EquipmentType EquipmentType `json:"equipmentType" yaml:"equipmentType"`
	IsCustom      bool          `json:"isCustom" yaml:"isCustom"`
	CreatedAt     time.Time     `json:"createdAt" yaml:"createdAt"`
}

// NewExercise creates a custom exercise. The store assigns ID and CreatedAt.
func NewExercise(name string, group MuscleGroup, equipment EquipmentType) *Exercise {
	return &Exercise{
		Name:          strings.TrimSpace(name),
		MuscleGroup:   group,
		EquipmentType: equipment,
		IsCustom:      true,
	}
}

// MatchesName reports whether the exercise name contains query, ignoring case.
func (e *Exercise) MatchesName(query string) bool {
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(query))
}
