// ABOUTME: CLI commands for browsing and managing exercises.
// ABOUTME: Supports list, search, add, delete, seed, and reseed subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseGroup     string
	exerciseEquipment string
	exerciseCustom    bool
	reseedForce       bool
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Browse and manage exercises",
	Long: `Browse the exercise catalog and manage custom exercises.

MUSCLE GROUPS:   chest, back, legs, shoulders, arms, core
EQUIPMENT:       barbell, dumbbell, machine, cable, bodyweight, kettlebell, other

EXAMPLES:

  fitlog exercise list --group legs
  fitlog exercise search curl
  fitlog exercise add "Sled Push" --group legs --equipment other`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var (
			list []*models.Exercise
			err  error
		)
		switch {
		case exerciseGroup != "":
			if !models.IsValidMuscleGroup(exerciseGroup) {
				return fmt.Errorf("unknown muscle group: %s", exerciseGroup)
			}
			list, err = db.GetExercisesByMuscleGroup(ctx, models.MuscleGroup(exerciseGroup))
		case exerciseCustom:
			list, err = db.GetCustomExercises(ctx)
		default:
			list, err = db.GetAllExercises(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if exerciseGroup != "" && exerciseCustom {
			filtered := list[:0]
			for _, e := range list {
				if e.IsCustom {
					filtered = append(filtered, e)
				}
			}
			list = filtered
		}
		printExercises(list)
		return nil
	},
}

var exerciseSearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search exercises by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := db.SearchExercises(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to search exercises: %w", err)
		}
		printExercises(list)
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("exercise name is required")
		}
		if !models.IsValidMuscleGroup(exerciseGroup) {
			return fmt.Errorf("unknown muscle group: %q (use one of chest, back, legs, shoulders, arms, core)", exerciseGroup)
		}
		if !models.IsValidEquipmentType(exerciseEquipment) {
			return fmt.Errorf("unknown equipment: %q", exerciseEquipment)
		}

		e := models.NewExercise(name, models.MuscleGroup(exerciseGroup), models.EquipmentType(exerciseEquipment))
		id, err := db.AddExercise(cmd.Context(), e)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s", e.Name)
		fmt.Printf("  %s %s / %s\n", color.New(color.Faint).Sprint(shortID(id)), e.MuscleGroup, e.EquipmentType)
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise",
	Long: `Delete an exercise by ID or ID prefix.

Sets already logged against the exercise are kept and show up as
"Unknown" in records.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := db.ResolveExerciseID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("exercise not found: %s", args[0])
		}
		e, err := db.GetExercise(ctx, id)
		if err != nil {
			return err
		}
		if err := db.DeleteExercise(ctx, id); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Yellow("✗ Deleted %s", e.Name)
		return nil
	},
}

var exerciseSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the built-in catalog if it is missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := db.SeedExercises(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to seed exercises: %w", err)
		}
		if n == 0 {
			fmt.Println("Catalog already present.")
			return nil
		}
		color.Green("✓ Seeded %d exercises", n)
		return nil
	},
}

var exerciseReseedCmd = &cobra.Command{
	Use:   "reseed",
	Short: "Delete every exercise and restore the built-in catalog",
	Long: `Delete every exercise, custom ones included, and reinsert the built-in catalog.

Logged sets keep their old exercise IDs, which no longer resolve afterwards.
Requires --force.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !reseedForce {
			return fmt.Errorf("reseed deletes custom exercises; rerun with --force")
		}
		n, err := db.ReseedExercises(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to reseed exercises: %w", err)
		}
		color.Green("✓ Reseeded %d exercises", n)
		return nil
	},
}

func printExercises(list []*models.Exercise) {
	if len(list) == 0 {
		fmt.Println("No exercises found.")
		return
	}

	faint := color.New(color.Faint)
	for _, e := range list {
		custom := ""
		if e.IsCustom {
			custom = color.CyanString(" custom")
		}
		fmt.Printf("%s %s %s %s%s\n",
			faint.Sprint(shortID(e.ID)),
			padRight(truncate(e.Name, 32), 32),
			padRight(string(e.MuscleGroup), 10),
			faint.Sprint(e.EquipmentType),
			custom)
	}
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exerciseGroup, "group", "g", "", "filter by muscle group")
	exerciseListCmd.Flags().BoolVar(&exerciseCustom, "custom", false, "only custom exercises")

	exerciseAddCmd.Flags().StringVarP(&exerciseGroup, "group", "g", "", "muscle group (required)")
	exerciseAddCmd.Flags().StringVarP(&exerciseEquipment, "equipment", "e", string(models.EquipmentOther), "equipment type")
	_ = exerciseAddCmd.MarkFlagRequired("group")

	exerciseReseedCmd.Flags().BoolVar(&reseedForce, "force", false, "confirm deleting custom exercises")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseSearchCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	exerciseCmd.AddCommand(exerciseSeedCmd)
	exerciseCmd.AddCommand(exerciseReseedCmd)
	rootCmd.AddCommand(exerciseCmd)
}
