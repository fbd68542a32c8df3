// ABOUTME: CLI commands for managing strength workouts and their sets.
// ABOUTME: Supports add, list, show, delete, and set subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/records"
	"github.com/spf13/cobra"
)

var (
	workoutAt     string
	workoutNotes  string
	workoutSince  string
	workoutUntil  string
	workoutLimit  int
	setRPE        float64
	setNumberFlag int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage strength workouts",
	Long: `Track strength workouts made of sets.

WORKFLOW:

  1. Create a workout:  fitlog workout add --notes "Leg day"
  2. Log sets:          fitlog workout set a1b2c3d4 squat 5 120
  3. Review it:         fitlog workout show a1b2c3d4

Exercises can be referenced by ID prefix or by a name fragment that matches
a single exercise.`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new workout",
	Long: `Add a new workout.

Examples:
  fitlog workout add
  fitlog workout add --at "2025-03-01 18:00" --notes "Push day"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseWhen(workoutAt)
		if err != nil {
			return err
		}

		w := models.NewWorkout(date)
		if workoutNotes != "" {
			w.WithNotes(workoutNotes)
		}

		id, err := db.AddWorkout(cmd.Context(), w)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Added workout")
		fmt.Printf("  ID: %s\n", shortID(id))
		fmt.Printf("  Date: %s\n", w.Date.Format("2006-01-02 15:04"))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rng, err := parseWindow(workoutSince, workoutUntil)
		if err != nil {
			return err
		}

		workouts, err := db.GetWorkoutsByDateRange(ctx, rng)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}
		if workoutLimit > 0 && len(workouts) > workoutLimit {
			workouts = workouts[:workoutLimit]
		}
		u, err := loadUnits(ctx)
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			sets, err := db.GetSetsByWorkout(ctx, w.ID)
			if err != nil {
				return fmt.Errorf("failed to load sets: %w", err)
			}
			notes := ""
			if w.Notes != nil && *w.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*w.Notes, 30))
			}
			fmt.Printf("%s %s %2d sets %14s%s\n",
				faint.Sprint(shortID(w.ID)),
				faint.Sprint(w.Date.Format("2006-01-02 15:04")),
				len(sets),
				u.fmtWeight(totalVolume(sets)),
				notes)
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := db.ResolveWorkoutID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}
		w, err := db.GetWorkout(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}
		sets, err := db.GetSetsByWorkout(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load sets: %w", err)
		}
		names, err := exerciseNames(ctx)
		if err != nil {
			return fmt.Errorf("failed to load exercises: %w", err)
		}
		u, err := loadUnits(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Workout: %s\n", shortID(w.ID))
		fmt.Printf("Date: %s\n", w.Date.Format("2006-01-02 15:04"))
		if w.Notes != nil {
			fmt.Printf("Notes: %s\n", *w.Notes)
		}

		if len(sets) > 0 {
			faint := color.New(color.Faint)
			fmt.Println("\nSets:")
			for _, s := range sets {
				name, ok := names[s.ExerciseID]
				if !ok {
					name = records.UnknownExercise
				}
				rpe := ""
				if s.RPE != nil {
					rpe = faint.Sprintf(" @%.1f", *s.RPE)
				}
				fmt.Printf("  %s %2d. %s %d × %s%s\n",
					faint.Sprint(shortID(s.ID)),
					s.SetNumber,
					padRight(truncate(name, 28), 28),
					s.Reps, u.fmtWeight(s.Weight), rpe)
			}
			fmt.Printf("\nVolume: %s\n", u.fmtWeight(totalVolume(sets)))
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout and its sets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := db.ResolveWorkoutID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}
		if err := db.DeleteWorkout(ctx, id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Yellow("✗ Deleted workout %s", shortID(id))
		return nil
	},
}

var workoutSetCmd = &cobra.Command{
	Use:   "set <workout-id> <exercise> <reps> <weight>",
	Short: "Log a set in a workout",
	Long: `Log a set in an existing workout. Weight uses the unit from 'fitlog settings'.

The set number defaults to the next one in the workout.

Examples:
  fitlog workout set a1b2c3d4 "barbell bench press" 5 100
  fitlog workout set a1b2c3d4 9f8e7d6c 8 60 --rpe 8.5`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		workoutID, err := db.ResolveWorkoutID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}
		exercise, err := resolveExercise(ctx, args[1])
		if err != nil {
			return err
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil || reps <= 0 {
			return fmt.Errorf("invalid reps: %s", args[2])
		}
		value, err := strconv.ParseFloat(args[3], 64)
		if err != nil || value < 0 {
			return fmt.Errorf("invalid weight: %s", args[3])
		}
		u, err := loadUnits(ctx)
		if err != nil {
			return err
		}
		weight := u.toKg(value)
		if cmd.Flags().Changed("rpe") && (setRPE < 1 || setRPE > 10) {
			return fmt.Errorf("rpe must be between 1 and 10")
		}

		setNumber := setNumberFlag
		if setNumber <= 0 {
			existing, err := db.GetSetsByWorkout(ctx, workoutID)
			if err != nil {
				return fmt.Errorf("failed to load sets: %w", err)
			}
			setNumber = len(existing) + 1
		}

		isPR, err := records.NewDetector(db).IsPR(ctx, exercise.ID, weight)
		if err != nil {
			return fmt.Errorf("failed to check record: %w", err)
		}

		s := models.NewWorkoutSet(workoutID, exercise.ID, setNumber, reps, weight)
		if cmd.Flags().Changed("rpe") {
			s.WithRPE(setRPE)
		}
		if _, err := db.AddSet(ctx, s); err != nil {
			return fmt.Errorf("failed to add set: %w", err)
		}

		color.Green("✓ Set %d: %s %d × %s", setNumber, exercise.Name, reps, u.fmtWeight(weight))
		if isPR {
			color.Yellow("  ★ New personal record")
		}
		return nil
	},
}

func totalVolume(sets []*models.WorkoutSet) float64 {
	var v float64
	for _, s := range sets {
		v += s.Volume()
	}
	return v
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutAt, "at", "", "workout date (YYYY-MM-DD HH:MM, default now)")
	workoutAddCmd.Flags().StringVarP(&workoutNotes, "notes", "n", "", "workout notes")

	workoutListCmd.Flags().StringVar(&workoutSince, "since", "", "only workouts on or after date (YYYY-MM-DD)")
	workoutListCmd.Flags().StringVar(&workoutUntil, "until", "", "only workouts on or before date (YYYY-MM-DD)")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "l", 20, "max number of results")

	workoutSetCmd.Flags().Float64Var(&setRPE, "rpe", 0, "rate of perceived exertion (1-10)")
	workoutSetCmd.Flags().IntVar(&setNumberFlag, "set-number", 0, "set number (default next)")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	workoutCmd.AddCommand(workoutSetCmd)
	rootCmd.AddCommand(workoutCmd)
}
