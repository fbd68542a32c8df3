// ABOUTME: Cardio and body weight series derived from sessions and entries.
// ABOUTME: Values are canonical units; pace is seconds per distance unit.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

// CardioPoint is one value per day (distance, duration seconds, or pace).
type CardioPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// IntensityPoint holds per-day averages of the machine intensity fields.
// Incline applies to treadmill sessions, resistance and cadence to bikes.
type IntensityPoint struct {
	Date          time.Time `json:"date"`
	AvgIncline    *float64  `json:"avgIncline,omitempty"`
	MaxIncline    *float64  `json:"maxIncline,omitempty"`
	AvgResistance *float64  `json:"avgResistance,omitempty"`
	AvgCadence    *float64  `json:"avgCadence,omitempty"`
}

// BodyWeightPoint is the last body weight recorded on a day.
type BodyWeightPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

func sessionDate(c *models.CardioSession) time.Time { return c.Date }

func (a *Aggregator) cardioDays(ctx context.Context, cardioType models.CardioType, rng models.DateRange) ([]dayGroup[*models.CardioSession], error) {
	sessions, err := a.repo.FindCardioSessions(ctx, cardioType, rng)
	if err != nil {
		return nil, fmt.Errorf("get cardio sessions: %w", err)
	}
	return groupByDay(sessions, sessionDate), nil
}

// CardioDistance sums distance per day. Days without any distance are skipped.
func (a *Aggregator) CardioDistance(ctx context.Context, cardioType models.CardioType, rng models.DateRange) ([]CardioPoint, error) {
	days, err := a.cardioDays(ctx, cardioType, rng)
	if err != nil {
		return nil, err
	}

	points := make([]CardioPoint, 0, len(days))
	for _, g := range days {
		var total float64
		var seen bool
		for _, c := range g.items {
			if c.Distance != nil {
				total += *c.Distance
				seen = true
			}
		}
		if seen {
			points = append(points, CardioPoint{Date: g.day, Value: total})
		}
	}
	return points, nil
}

// CardioDuration sums duration in seconds per day.
func (a *Aggregator) CardioDuration(ctx context.Context, cardioType models.CardioType, rng models.DateRange) ([]CardioPoint, error) {
	days, err := a.cardioDays(ctx, cardioType, rng)
	if err != nil {
		return nil, err
	}

	points := make([]CardioPoint, 0, len(days))
	for _, g := range days {
		var total int
		for _, c := range g.items {
			total += c.Duration
		}
		points = append(points, CardioPoint{Date: g.day, Value: float64(total)})
	}
	return points, nil
}

// CardioPace is total duration over total distance per day, counting only
// sessions that covered some distance.
func (a *Aggregator) CardioPace(ctx context.Context, cardioType models.CardioType, rng models.DateRange) ([]CardioPoint, error) {
	days, err := a.cardioDays(ctx, cardioType, rng)
	if err != nil {
		return nil, err
	}

	points := make([]CardioPoint, 0, len(days))
	for _, g := range days {
		var seconds, distance float64
		for _, c := range g.items {
			if c.Distance == nil || *c.Distance <= 0 {
				continue
			}
			seconds += float64(c.Duration)
			distance += *c.Distance
		}
		if distance > 0 {
			points = append(points, CardioPoint{Date: g.day, Value: seconds / distance})
		}
	}
	return points, nil
}

// CardioIntensity averages the intensity fields per day. Days with none are skipped.
func (a *Aggregator) CardioIntensity(ctx context.Context, cardioType models.CardioType, rng models.DateRange) ([]IntensityPoint, error) {
	days, err := a.cardioDays(ctx, cardioType, rng)
	if err != nil {
		return nil, err
	}

	points := make([]IntensityPoint, 0, len(days))
	for _, g := range days {
		var incline, resistance, cadence mean
		var peak *float64
		for _, c := range g.items {
			incline.add(c.AvgIncline)
			resistance.add(c.AvgResistance)
			cadence.add(c.AvgCadence)
			if c.MaxIncline != nil && (peak == nil || *c.MaxIncline > *peak) {
				v := *c.MaxIncline
				peak = &v
			}
		}
		p := IntensityPoint{
			Date:          g.day,
			AvgIncline:    incline.value(),
			MaxIncline:    peak,
			AvgResistance: resistance.value(),
			AvgCadence:    cadence.value(),
		}
		if p.AvgIncline == nil && p.MaxIncline == nil && p.AvgResistance == nil && p.AvgCadence == nil {
			continue
		}
		points = append(points, p)
	}
	return points, nil
}

// BodyWeightProgress keeps the latest entry of each day.
func (a *Aggregator) BodyWeightProgress(ctx context.Context, rng models.DateRange) ([]BodyWeightPoint, error) {
	entries, err := a.repo.GetBodyWeightByDateRange(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("get body weight: %w", err)
	}

	// Entries arrive newest first; flip them so same-instant ties keep insertion order.
	oldestFirst := make([]*models.BodyWeightEntry, len(entries))
	for i, e := range entries {
		oldestFirst[len(entries)-1-i] = e
	}

	days := groupByDay(oldestFirst, func(b *models.BodyWeightEntry) time.Time { return b.Date })
	points := make([]BodyWeightPoint, 0, len(days))
	for _, g := range days {
		last := g.items[len(g.items)-1]
		points = append(points, BodyWeightPoint{Date: g.day, Weight: last.Weight})
	}
	return points, nil
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v *float64) {
	if v != nil {
		m.sum += *v
		m.n++
	}
}

func (m *mean) value() *float64 {
	if m.n == 0 {
		return nil
	}
	v := m.sum / float64(m.n)
	return &v
}
