// ABOUTME: CLI commands for logging cardio sessions.
// ABOUTME: Supports add, list, and delete for treadmill and stationary bike.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	cardioAt         string
	cardioNotes      string
	cardioDistance   float64
	cardioCalories   float64
	cardioSpeed      float64
	cardioIncline    float64
	cardioMaxIncline float64
	cardioResistance float64
	cardioCadence    float64
	cardioType       string
	cardioSince      string
	cardioUntil      string
)

var cardioCmd = &cobra.Command{
	Use:     "cardio",
	Aliases: []string{"c"},
	Short:   "Manage cardio sessions",
	Long: `Track treadmill and stationary bike sessions.

Duration is given in minutes (decimals allowed) and stored in seconds.
Distance and speed use the distance unit from 'fitlog settings'.

Examples:
  fitlog cardio add treadmill 30 --distance 5 --incline 2 --max-incline 6
  fitlog cardio add stationary-bike 45 --resistance 8 --cadence 85
  fitlog cardio list --type treadmill --since 2025-01-01`,
}

var cardioAddCmd = &cobra.Command{
	Use:   "add <type> <minutes>",
	Short: "Add a cardio session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidCardioType(args[0]) {
			return fmt.Errorf("unknown cardio type: %s (use treadmill or stationary-bike)", args[0])
		}
		minutes, err := strconv.ParseFloat(args[1], 64)
		if err != nil || minutes < 0 {
			return fmt.Errorf("invalid duration: %s", args[1])
		}
		date, err := parseWhen(cardioAt)
		if err != nil {
			return err
		}
		u, err := loadUnits(cmd.Context())
		if err != nil {
			return err
		}

		c := models.NewCardioSession(models.CardioType(args[0]), date, int(minutes*60+0.5))
		flags := cmd.Flags()
		if flags.Changed("distance") {
			c.WithDistance(u.toKm(cardioDistance))
		}
		if flags.Changed("calories") {
			c.WithCalories(cardioCalories)
		}
		if flags.Changed("speed") {
			speed := u.toKm(cardioSpeed)
			c.AvgSpeed = &speed
		}
		if flags.Changed("incline") || flags.Changed("max-incline") {
			c.WithIncline(cardioIncline, cardioMaxIncline)
		}
		if flags.Changed("resistance") || flags.Changed("cadence") {
			c.WithResistance(cardioResistance, cardioCadence)
		}
		if cardioNotes != "" {
			c.WithNotes(cardioNotes)
		}

		id, err := db.AddCardioSession(cmd.Context(), c)
		if err != nil {
			return fmt.Errorf("failed to add cardio session: %w", err)
		}

		color.Green("✓ Added %s session", c.Type)
		fmt.Printf("  %s %s%s\n",
			color.New(color.Faint).Sprint(shortID(id)),
			formatDuration(c.Duration),
			distanceSuffix(u, c))
		return nil
	},
}

var cardioListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List cardio sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cardioType != "" && !models.IsValidCardioType(cardioType) {
			return fmt.Errorf("unknown cardio type: %s", cardioType)
		}
		rng, err := parseWindow(cardioSince, cardioUntil)
		if err != nil {
			return err
		}

		sessions, err := db.FindCardioSessions(cmd.Context(), models.CardioType(cardioType), rng)
		if err != nil {
			return fmt.Errorf("failed to list cardio sessions: %w", err)
		}
		u, err := loadUnits(cmd.Context())
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No cardio sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range sessions {
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(shortID(c.ID)),
				faint.Sprint(c.Date.Format("2006-01-02 15:04")),
				padRight(string(c.Type), 16),
				formatDuration(c.Duration),
				distanceSuffix(u, c))
		}
		return nil
	},
}

var cardioDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a cardio session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := db.ResolveCardioSessionID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("cardio session not found: %s", args[0])
		}
		if err := db.DeleteCardioSession(ctx, id); err != nil {
			return fmt.Errorf("failed to delete cardio session: %w", err)
		}

		color.Yellow("✗ Deleted cardio session %s", shortID(id))
		return nil
	},
}

func distanceSuffix(u units, c *models.CardioSession) string {
	if c.Distance == nil {
		return ""
	}
	return " " + u.fmtDistance(*c.Distance)
}

func init() {
	cardioAddCmd.Flags().StringVar(&cardioAt, "at", "", "session date (YYYY-MM-DD HH:MM, default now)")
	cardioAddCmd.Flags().StringVarP(&cardioNotes, "notes", "n", "", "session notes")
	cardioAddCmd.Flags().Float64VarP(&cardioDistance, "distance", "d", 0, "distance")
	cardioAddCmd.Flags().Float64Var(&cardioCalories, "calories", 0, "calories burned")
	cardioAddCmd.Flags().Float64Var(&cardioSpeed, "speed", 0, "average speed per hour")
	cardioAddCmd.Flags().Float64Var(&cardioIncline, "incline", 0, "average incline % (treadmill)")
	cardioAddCmd.Flags().Float64Var(&cardioMaxIncline, "max-incline", 0, "max incline % (treadmill)")
	cardioAddCmd.Flags().Float64Var(&cardioResistance, "resistance", 0, "average resistance level (bike)")
	cardioAddCmd.Flags().Float64Var(&cardioCadence, "cadence", 0, "average cadence rpm (bike)")

	cardioListCmd.Flags().StringVarP(&cardioType, "type", "t", "", "filter by cardio type")
	cardioListCmd.Flags().StringVar(&cardioSince, "since", "", "only sessions on or after date (YYYY-MM-DD)")
	cardioListCmd.Flags().StringVar(&cardioUntil, "until", "", "only sessions on or before date (YYYY-MM-DD)")

	cardioCmd.AddCommand(cardioAddCmd)
	cardioCmd.AddCommand(cardioListCmd)
	cardioCmd.AddCommand(cardioDeleteCmd)
	rootCmd.AddCommand(cardioCmd)
}
