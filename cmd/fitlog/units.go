// ABOUTME: Display unit conversion driven by the settings singleton.
// ABOUTME: Stored values are kg and km; input and output use the user's units.
package main

import (
	"context"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
)

const (
	lbsPerKg = 2.2046226218
	kmPerMi  = 1.609344
)

type units struct {
	weight   models.WeightUnit
	distance models.DistanceUnit
}

// loadUnits reads the settings without creating them.
func loadUnits(ctx context.Context) (units, error) {
	s, err := db.FindSettings(ctx)
	if err != nil {
		return units{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if s == nil {
		s = models.DefaultSettings()
	}
	return units{weight: s.WeightUnit, distance: s.DistanceUnit}, nil
}

func (u units) fromKg(kg float64) float64 {
	if u.weight == models.WeightLbs {
		return kg * lbsPerKg
	}
	return kg
}

func (u units) toKg(v float64) float64 {
	if u.weight == models.WeightLbs {
		return v / lbsPerKg
	}
	return v
}

func (u units) fromKm(km float64) float64 {
	if u.distance == models.DistanceMi {
		return km / kmPerMi
	}
	return km
}

func (u units) toKm(v float64) float64 {
	if u.distance == models.DistanceMi {
		return v * kmPerMi
	}
	return v
}

func (u units) fmtWeight(kg float64) string {
	return fmt.Sprintf("%.1f %s", u.fromKg(kg), u.weight)
}

func (u units) fmtDistance(km float64) string {
	return fmt.Sprintf("%.2f %s", u.fromKm(km), u.distance)
}
