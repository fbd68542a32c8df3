// ABOUTME: CLI commands for per-day progress series.
// ABOUTME: Covers weight, volume, cardio, and body weight progress.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/progress"
	"github.com/spf13/cobra"
)

var (
	progressSince  string
	progressUntil  string
	progressType   string
	progressMetric string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Per-day progress series",
	Long: `Show one point per day, oldest first. All subcommands accept --since and
--until (YYYY-MM-DD, inclusive).

In 'progress weight' the star marks the latest day that reached the heaviest
weight inside the window. It is not necessarily the all-time record; see
'fitlog pr list' for that.`,
}

var progressWeightCmd = &cobra.Command{
	Use:   "weight <exercise>",
	Short: "Max weight per day for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		exercise, err := resolveExercise(ctx, args[0])
		if err != nil {
			return err
		}
		rng, err := parseWindow(progressSince, progressUntil)
		if err != nil {
			return err
		}

		points, err := progress.NewAggregator(db).WeightProgress(ctx, exercise.ID, rng)
		if err != nil {
			return fmt.Errorf("failed to compute progress: %w", err)
		}
		if len(points) == 0 {
			fmt.Println("No data.")
			return nil
		}
		u, err := loadUnits(ctx)
		if err != nil {
			return err
		}

		fmt.Println(exercise.Name)
		for _, p := range points {
			mark := ""
			if p.IsPR {
				mark = color.YellowString(" ★")
			}
			fmt.Printf("  %s %12s%s\n", p.Date.Format(dateLayout), u.fmtWeight(p.MaxWeight), mark)
		}
		return nil
	},
}

var progressVolumeCmd = &cobra.Command{
	Use:   "volume [exercise]",
	Short: "Volume (reps × weight) per day",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		exerciseID := ""
		if len(args) == 1 {
			exercise, err := resolveExercise(ctx, args[0])
			if err != nil {
				return err
			}
			exerciseID = exercise.ID
		}
		rng, err := parseWindow(progressSince, progressUntil)
		if err != nil {
			return err
		}

		points, err := progress.NewAggregator(db).VolumeProgress(ctx, exerciseID, rng)
		if err != nil {
			return fmt.Errorf("failed to compute volume: %w", err)
		}
		if len(points) == 0 {
			fmt.Println("No data.")
			return nil
		}
		u, err := loadUnits(ctx)
		if err != nil {
			return err
		}
		for _, p := range points {
			fmt.Printf("  %s %14s\n", p.Date.Format(dateLayout), u.fmtWeight(p.Volume))
		}
		return nil
	},
}

var progressCardioCmd = &cobra.Command{
	Use:   "cardio",
	Short: "Cardio distance, duration, pace, or intensity per day",
	Long: `Cardio series per day.

METRICS:

  distance    total distance
  duration    total seconds
  pace        seconds per distance unit
  intensity   average incline (treadmill) and resistance/cadence (bike)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if progressType != "" && !models.IsValidCardioType(progressType) {
			return fmt.Errorf("unknown cardio type: %s", progressType)
		}
		rng, err := parseWindow(progressSince, progressUntil)
		if err != nil {
			return err
		}
		agg := progress.NewAggregator(db)
		ct := models.CardioType(progressType)
		u, err := loadUnits(ctx)
		if err != nil {
			return err
		}

		if progressMetric == "intensity" {
			points, err := agg.CardioIntensity(ctx, ct, rng)
			if err != nil {
				return fmt.Errorf("failed to compute intensity: %w", err)
			}
			if len(points) == 0 {
				fmt.Println("No data.")
				return nil
			}
			for _, p := range points {
				fmt.Printf("  %s incline %s resistance %s cadence %s\n",
					p.Date.Format(dateLayout),
					optional(p.AvgIncline), optional(p.AvgResistance), optional(p.AvgCadence))
			}
			return nil
		}

		var points []progress.CardioPoint
		switch progressMetric {
		case "distance":
			points, err = agg.CardioDistance(ctx, ct, rng)
		case "duration":
			points, err = agg.CardioDuration(ctx, ct, rng)
		case "pace":
			points, err = agg.CardioPace(ctx, ct, rng)
		default:
			return fmt.Errorf("unknown metric: %s (use distance, duration, pace, or intensity)", progressMetric)
		}
		if err != nil {
			return fmt.Errorf("failed to compute %s: %w", progressMetric, err)
		}
		if len(points) == 0 {
			fmt.Println("No data.")
			return nil
		}
		for _, p := range points {
			v := p.Value
			switch progressMetric {
			case "distance":
				v = u.fromKm(v)
			case "pace":
				v = u.toKm(v)
			}
			fmt.Printf("  %s %10.2f\n", p.Date.Format(dateLayout), v)
		}
		return nil
	},
}

var progressBodyWeightCmd = &cobra.Command{
	Use:   "bodyweight",
	Short: "Body weight per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := parseWindow(progressSince, progressUntil)
		if err != nil {
			return err
		}
		points, err := progress.NewAggregator(db).BodyWeightProgress(cmd.Context(), rng)
		if err != nil {
			return fmt.Errorf("failed to compute body weight: %w", err)
		}
		if len(points) == 0 {
			fmt.Println("No data.")
			return nil
		}
		u, err := loadUnits(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range points {
			fmt.Printf("  %s %10s\n", p.Date.Format(dateLayout), u.fmtWeight(p.Weight))
		}
		return nil
	},
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func init() {
	progressCmd.PersistentFlags().StringVar(&progressSince, "since", "", "start date (YYYY-MM-DD)")
	progressCmd.PersistentFlags().StringVar(&progressUntil, "until", "", "end date (YYYY-MM-DD)")

	progressCardioCmd.Flags().StringVarP(&progressType, "type", "t", "", "cardio type")
	progressCardioCmd.Flags().StringVarP(&progressMetric, "metric", "m", "distance", "distance, duration, pace, or intensity")

	progressCmd.AddCommand(progressWeightCmd)
	progressCmd.AddCommand(progressVolumeCmd)
	progressCmd.AddCommand(progressCardioCmd)
	progressCmd.AddCommand(progressBodyWeightCmd)
	rootCmd.AddCommand(progressCmd)
}
