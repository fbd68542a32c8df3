// ABOUTME: Root Cobra command for fitlog CLI.
// ABOUTME: Loads config, sets up logging, and manages the store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fitlog/internal/config"
	"github.com/harperreed/fitlog/internal/logging"
	"github.com/harperreed/fitlog/internal/storage"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	db      *storage.DB
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal strength and cardio training log",
	Long: `Fitlog is a CLI for logging strength workouts, cardio sessions, and body weight.

QUICK START:

  $ fitlog workout add --notes "Push day"        # Start a workout
  $ fitlog workout set a1b2c3d4 bench 5 100      # Log 5 reps at 100
  $ fitlog cardio add treadmill 30 --distance 3  # 30 minutes, 3 mi
  $ fitlog weight add 81.4                       # Log body weight

ANALYSIS:

  $ fitlog pr list                  # All-time personal records
  $ fitlog progress weight bench    # Per-day max weight over time
  $ fitlog stats                    # Whole-history summary

BACKUP:

  $ fitlog export json -o ~/backups/    # Writes fitness-tracker-backup-<date>.json
  $ fitlog import backup.json --dry-run # Validate and preview
  $ fitlog import backup.json --mode replace

Weights are stored in kg and distances in km; input and output use the units
chosen with 'fitlog settings set weight-unit|distance-unit' (kg and mi by
default). The built-in exercise catalog is seeded automatically on first run.

CONFIGURATION:

  Settings are read from $XDG_CONFIG_HOME/fitlog/config.json and FITLOG_*
  environment variables (FITLOG_DATA_DIR, FITLOG_LOG_LEVEL, FITLOG_LOG_FILE,
  FITLOG_LOG_JSON). Data lives in $XDG_DATA_HOME/fitlog/fitlog.db by default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.GetLogFile(),
			LogToStderr:   true,
			LogLevel:      cfg.LogLevel,
			LogFormatJSON: cfg.LogJSON,
		})

		db, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		n, err := db.SeedExercises(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to seed exercises: %w", err)
		}
		if n > 0 {
			log.WithField("count", n).Info("seeded exercise catalog")
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// closeStore releases the store. Post-run hooks do not fire when a command
// fails, so main calls it as well.
func closeStore() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (overrides config)")
}
