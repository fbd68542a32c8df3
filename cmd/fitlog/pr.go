// ABOUTME: CLI commands for all-time personal records.
// ABOUTME: Supports list and check subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/records"
	"github.com/spf13/cobra"
)

var prGroup string

var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Personal records",
	Long: `Show all-time personal records: the heaviest set ever logged per exercise.

Matching a record does not beat it.`,
}

var prListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List personal records, heaviest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		detector := records.NewDetector(db)

		var (
			prs []records.PersonalRecord
			err error
		)
		if prGroup != "" {
			if !models.IsValidMuscleGroup(prGroup) {
				return fmt.Errorf("unknown muscle group: %s", prGroup)
			}
			prs, err = detector.PRsByMuscleGroup(cmd.Context(), models.MuscleGroup(prGroup))
		} else {
			prs, err = detector.AllPRs(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}
		if len(prs) == 0 {
			fmt.Println("No records yet.")
			return nil
		}
		u, err := loadUnits(cmd.Context())
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		for _, pr := range prs {
			date := "unknown date"
			if !pr.Date.IsZero() {
				date = pr.Date.Format(dateLayout)
			}
			fmt.Printf("%s %12s × %-3d %s\n",
				padRight(truncate(pr.ExerciseName, 32), 32),
				u.fmtWeight(pr.Weight), pr.Reps,
				faint.Sprint(date))
		}
		return nil
	},
}

var prCheckCmd = &cobra.Command{
	Use:   "check <exercise> <weight>",
	Short: "Check whether a weight would be a new record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		exercise, err := resolveExercise(ctx, args[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		u, err := loadUnits(ctx)
		if err != nil {
			return err
		}
		weight := u.toKg(value)

		detector := records.NewDetector(db)
		isPR, err := detector.IsPR(ctx, exercise.ID, weight)
		if err != nil {
			return fmt.Errorf("failed to check record: %w", err)
		}
		current, err := detector.ExercisePR(ctx, exercise.ID)
		if err != nil {
			return fmt.Errorf("failed to check record: %w", err)
		}

		if isPR {
			color.Green("✓ %s would be a new record for %s", u.fmtWeight(weight), exercise.Name)
		} else {
			color.Yellow("✗ %s is not a new record for %s", u.fmtWeight(weight), exercise.Name)
		}
		if current != nil {
			fmt.Printf("  Current: %s × %d\n", u.fmtWeight(current.Weight), current.Reps)
		}
		return nil
	},
}

func init() {
	prListCmd.Flags().StringVarP(&prGroup, "group", "g", "", "filter by muscle group")

	prCmd.AddCommand(prListCmd)
	prCmd.AddCommand(prCheckCmd)
	rootCmd.AddCommand(prCmd)
}
