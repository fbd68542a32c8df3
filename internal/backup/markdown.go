// ABOUTME: Markdown training log export, newest entries first.
// ABOUTME: One-way output for reading; restores only come from JSON snapshots.
package backup

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

const logTimeLayout = "2006-01-02 15:04"

// ExportMarkdown renders workouts with their sets, cardio sessions, and body
// weight as Markdown tables. A non-nil since drops older entries. Weights are
// in kg and distances in km.
func (s *Service) ExportMarkdown(ctx context.Context, since *time.Time) (string, error) {
	snap, err := s.ExportAllData(ctx)
	if err != nil {
		return "", err
	}
	all, err := s.store.GetAllExercises(ctx)
	if err != nil {
		return "", fmt.Errorf("export exercises: %w", err)
	}
	names := make(map[string]string, len(all))
	for _, e := range all {
		names[e.ID] = e.Name
	}

	var window models.DateRange
	if since != nil {
		window = models.Since(*since)
	}
	keep := window.Contains

	setsByWorkout := make(map[string][]*models.WorkoutSet)
	for _, ws := range snap.WorkoutSets {
		setsByWorkout[ws.WorkoutID] = append(setsByWorkout[ws.WorkoutID], ws)
	}

	var sb strings.Builder
	now := s.now()
	fmt.Fprintf(&sb, "# Training Log - %s\n\n", now.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format(time.RFC3339))

	sb.WriteString("## Workouts\n\n")
	for _, w := range snap.Workouts {
		if !keep(w.Date) {
			continue
		}
		fmt.Fprintf(&sb, "### %s\n\n", w.Date.Format(logTimeLayout))
		if w.Notes != nil && *w.Notes != "" {
			fmt.Fprintf(&sb, "%s\n\n", *w.Notes)
		}

		sets := setsByWorkout[w.ID]
		if len(sets) == 0 {
			sb.WriteString("_No sets logged._\n\n")
			continue
		}
		sort.SliceStable(sets, func(i, j int) bool {
			return sets[i].SetNumber < sets[j].SetNumber
		})

		sb.WriteString("| # | Exercise | Reps | Weight | RPE |\n")
		sb.WriteString("|---|----------|------|--------|-----|\n")
		var volume float64
		for _, ws := range sets {
			name, ok := names[ws.ExerciseID]
			if !ok {
				name = "Unknown"
			}
			rpe := ""
			if ws.RPE != nil {
				rpe = fmt.Sprintf("%.1f", *ws.RPE)
			}
			fmt.Fprintf(&sb, "| %d | %s | %d | %.1f kg | %s |\n", ws.SetNumber, name, ws.Reps, ws.Weight, rpe)
			volume += ws.Volume()
		}
		fmt.Fprintf(&sb, "\nVolume: %.1f kg\n\n", volume)
	}

	sb.WriteString("## Cardio\n\n")
	sb.WriteString("| Date | Type | Duration | Distance | Notes |\n")
	sb.WriteString("|------|------|----------|----------|-------|\n")
	for _, c := range snap.CardioSessions {
		if !keep(c.Date) {
			continue
		}
		distance := ""
		if c.Distance != nil {
			distance = fmt.Sprintf("%.2f km", *c.Distance)
		}
		notes := ""
		if c.Notes != nil {
			notes = *c.Notes
		}
		fmt.Fprintf(&sb, "| %s | %s | %d min | %s | %s |\n",
			c.Date.Format(logTimeLayout), c.Type, (c.Duration+30)/60, distance, notes)
	}

	sb.WriteString("\n## Body Weight\n\n")
	sb.WriteString("| Date | Weight | Notes |\n")
	sb.WriteString("|------|--------|-------|\n")
	for _, b := range snap.BodyWeightEntries {
		if !keep(b.Date) {
			continue
		}
		notes := ""
		if b.Notes != nil {
			notes = *b.Notes
		}
		fmt.Fprintf(&sb, "| %s | %.1f kg | %s |\n", b.Date.Format(logTimeLayout), b.Weight, notes)
	}

	return sb.String(), nil
}
