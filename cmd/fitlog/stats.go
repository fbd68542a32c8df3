// ABOUTME: CLI command for whole-history training statistics.
// ABOUTME: Prints the summary plus a cardio summary for an optional window.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/stats"
	"github.com/spf13/cobra"
)

var (
	statsCardioType string
	statsSince      string
	statsUntil      string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Training summary",
	Long: `Show whole-history totals, weekly rates, and the most trained muscle group.

The cardio section can be narrowed with --type, --since, and --until.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if statsCardioType != "" && !models.IsValidCardioType(statsCardioType) {
			return fmt.Errorf("unknown cardio type: %s", statsCardioType)
		}
		rng, err := parseWindow(statsSince, statsUntil)
		if err != nil {
			return err
		}

		agg := stats.NewAggregator(db)
		summary, err := agg.Stats(ctx)
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}
		cardio, err := agg.CardioStats(ctx, models.CardioType(statsCardioType), rng)
		if err != nil {
			return fmt.Errorf("failed to compute cardio stats: %w", err)
		}

		u, err := loadUnits(ctx)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Println("Strength")
		fmt.Printf("  Workouts:        %d (%.1f/week)\n", summary.TotalWorkouts, summary.WorkoutsPerWeek)
		fmt.Printf("  Total volume:    %s\n", u.fmtWeight(summary.TotalVolume))
		most := "-"
		if summary.MostTrainedMuscleGroup != nil {
			most = string(*summary.MostTrainedMuscleGroup)
		}
		fmt.Printf("  Most trained:    %s\n", most)

		bold.Println("\nCardio")
		fmt.Printf("  Sessions:        %d (%.1f/week)\n", summary.TotalCardioSessions, summary.CardioPerWeek)
		fmt.Printf("  Total time:      %s\n", formatDuration(summary.TotalCardioTime))
		fmt.Printf("  Total distance:  %s\n", u.fmtDistance(summary.TotalCardioDistance))

		filtered := statsCardioType != "" || !rng.IsOpen()
		if !filtered {
			fmt.Printf("  Average session: %s\n", formatDuration(int(cardio.AverageDuration+0.5)))
			return nil
		}

		label := "all types"
		if statsCardioType != "" {
			label = statsCardioType
		}
		bold.Printf("\nCardio (%s, filtered)\n", label)
		fmt.Printf("  Sessions:        %d\n", cardio.TotalSessions)
		fmt.Printf("  Total time:      %s\n", formatDuration(cardio.TotalTime))
		fmt.Printf("  Total distance:  %s\n", u.fmtDistance(cardio.TotalDistance))
		fmt.Printf("  Average session: %s\n", formatDuration(int(cardio.AverageDuration+0.5)))
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsCardioType, "type", "t", "", "cardio type for the cardio summary")
	statsCmd.Flags().StringVar(&statsSince, "since", "", "cardio summary start date (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsUntil, "until", "", "cardio summary end date (YYYY-MM-DD)")
	rootCmd.AddCommand(statsCmd)
}
