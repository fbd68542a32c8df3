// ABOUTME: CLI commands for logging body weight.
// ABOUTME: Supports add, list, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	weightAt    string
	weightNotes string
	weightSince string
	weightUntil string
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var weightAddCmd = &cobra.Command{
	Use:   "add <weight>",
	Short: "Log body weight in the configured unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil || value <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		date, err := parseWhen(weightAt)
		if err != nil {
			return err
		}
		u, err := loadUnits(cmd.Context())
		if err != nil {
			return err
		}

		b := models.NewBodyWeightEntry(date, u.toKg(value))
		if weightNotes != "" {
			b.WithNotes(weightNotes)
		}
		id, err := db.AddBodyWeightEntry(cmd.Context(), b)
		if err != nil {
			return fmt.Errorf("failed to add body weight: %w", err)
		}

		color.Green("✓ Logged %s", u.fmtWeight(b.Weight))
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(shortID(id)), b.Date.Format("2006-01-02 15:04"))
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List body weight entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := parseWindow(weightSince, weightUntil)
		if err != nil {
			return err
		}
		entries, err := db.GetBodyWeightByDateRange(cmd.Context(), rng)
		if err != nil {
			return fmt.Errorf("failed to list body weight: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No body weight entries found.")
			return nil
		}

		u, err := loadUnits(cmd.Context())
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		for _, b := range entries {
			notes := ""
			if b.Notes != nil && *b.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*b.Notes, 30))
			}
			fmt.Printf("%s %s %10s%s\n",
				faint.Sprint(shortID(b.ID)),
				faint.Sprint(b.Date.Format("2006-01-02 15:04")),
				u.fmtWeight(b.Weight),
				notes)
		}
		return nil
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a body weight entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := db.ResolveBodyWeightEntryID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("body weight entry not found: %s", args[0])
		}
		if err := db.DeleteBodyWeightEntry(ctx, id); err != nil {
			return fmt.Errorf("failed to delete body weight entry: %w", err)
		}

		color.Yellow("✗ Deleted body weight entry %s", shortID(id))
		return nil
	},
}

func init() {
	weightAddCmd.Flags().StringVar(&weightAt, "at", "", "date (YYYY-MM-DD HH:MM, default now)")
	weightAddCmd.Flags().StringVarP(&weightNotes, "notes", "n", "", "notes")

	weightListCmd.Flags().StringVar(&weightSince, "since", "", "only entries on or after date (YYYY-MM-DD)")
	weightListCmd.Flags().StringVar(&weightUntil, "until", "", "only entries on or before date (YYYY-MM-DD)")

	weightCmd.AddCommand(weightAddCmd)
	weightCmd.AddCommand(weightListCmd)
	weightCmd.AddCommand(weightDeleteCmd)
	rootCmd.AddCommand(weightCmd)
}
