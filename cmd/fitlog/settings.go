// ABOUTME: CLI commands for the app settings singleton.
// ABOUTME: Supports show and set subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change app settings",
	Long: `Show or change app settings.

KEYS:

  weight-unit     kg or lbs
  distance-unit   mi or km
  theme           light, dark, or system
  rest-timer      default rest timer in seconds
  barbell-weight  empty barbell weight in kg`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := db.GetSettings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		printSettings(s)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		var u storage.SettingsUpdate
		switch key {
		case "weight-unit":
			if !models.IsValidWeightUnit(value) {
				return fmt.Errorf("invalid weight unit: %s (use kg or lbs)", value)
			}
			wu := models.WeightUnit(value)
			u.WeightUnit = &wu
		case "distance-unit":
			if !models.IsValidDistanceUnit(value) {
				return fmt.Errorf("invalid distance unit: %s (use mi or km)", value)
			}
			du := models.DistanceUnit(value)
			u.DistanceUnit = &du
		case "theme":
			if !models.IsValidTheme(value) {
				return fmt.Errorf("invalid theme: %s (use light, dark, or system)", value)
			}
			th := models.Theme(value)
			u.Theme = &th
		case "rest-timer":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid rest timer: %s", value)
			}
			u.RestTimerDefault = &n
		case "barbell-weight":
			w, err := strconv.ParseFloat(value, 64)
			if err != nil || w < 0 {
				return fmt.Errorf("invalid barbell weight: %s", value)
			}
			u.BarbellWeight = &w
		default:
			return fmt.Errorf("unknown setting: %s", key)
		}

		s, err := db.UpdateSettings(cmd.Context(), u)
		if err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}
		color.Green("✓ Updated %s", key)
		printSettings(s)
		return nil
	},
}

func printSettings(s *models.Settings) {
	fmt.Printf("  weight-unit     %s\n", s.WeightUnit)
	fmt.Printf("  distance-unit   %s\n", s.DistanceUnit)
	fmt.Printf("  theme           %s\n", s.Theme)
	fmt.Printf("  rest-timer      %ds\n", s.RestTimerDefault)
	fmt.Printf("  barbell-weight  %.1f kg\n", s.BarbellWeight)
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
