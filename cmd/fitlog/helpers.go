// ABOUTME: Shared parsing and formatting helpers for CLI commands.
// ABOUTME: Covers timestamps, date windows, id prefixes, and exercise lookup.
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
)

const dateLayout = "2006-01-02"

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		dateLayout,
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

// parseWhen returns now for an empty flag value.
func parseWhen(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := parseTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp: %s", s)
	}
	return t, nil
}

// parseWindow builds an inclusive range from --since and --until dates.
// The until day is included through its last millisecond.
func parseWindow(since, until string) (models.DateRange, error) {
	var rng models.DateRange
	if since != "" {
		t, err := time.Parse(dateLayout, since)
		if err != nil {
			return rng, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", since)
		}
		rng.Start = &t
	}
	if until != "" {
		t, err := time.Parse(dateLayout, until)
		if err != nil {
			return rng, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", until)
		}
		end := t.Add(24*time.Hour - time.Millisecond)
		rng.End = &end
	}
	return rng, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

// resolveExercise accepts an id, an id prefix, or a name fragment matching
// exactly one exercise. An exact name match wins over other fragments.
func resolveExercise(ctx context.Context, ref string) (*models.Exercise, error) {
	if id, err := db.ResolveExerciseID(ctx, ref); err == nil {
		return db.GetExercise(ctx, id)
	} else if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrAmbiguousID) {
		return nil, err
	}

	matches, err := db.SearchExercises(ctx, ref)
	if err != nil {
		return nil, err
	}
	for _, e := range matches {
		if strings.EqualFold(e.Name, ref) {
			return e, nil
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no exercise matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, 5)
		for i, e := range matches {
			if i == 5 {
				names = append(names, "...")
				break
			}
			names = append(names, e.Name)
		}
		return nil, fmt.Errorf("%q matches %d exercises: %s", ref, len(matches), strings.Join(names, ", "))
	}
}

func exerciseNames(ctx context.Context) (map[string]string, error) {
	all, err := db.GetAllExercises(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, e := range all {
		names[e.ID] = e.Name
	}
	return names, nil
}
