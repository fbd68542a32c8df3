// ABOUTME: CLI commands for exporting and importing backup snapshots.
// ABOUTME: Export writes JSON, YAML, or a Markdown log; import validates, previews, and applies JSON.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/backup"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
	importMode   string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export all data as a versioned backup snapshot.

FORMATS:

  json       Full JSON export (restorable with 'fitlog import')
  yaml       YAML export (human-readable)
  markdown   Training log with workouts, sets, cardio, and body weight

Only custom exercises are exported; the built-in catalog is reseeded instead.

OPTIONS:

  --output, -o   Write to a file instead of stdout. When the path is a
                 directory, the file is named fitness-tracker-backup-<date>.json
  --since        Markdown only: skip entries before this date (YYYY-MM-DD)

EXAMPLES:

  fitlog export json                  # Print JSON to stdout
  fitlog export json -o ~/backups     # Write a dated backup file
  fitlog export yaml -o backup.yaml
  fitlog export markdown --since 2025-01-01 -o log.md`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := backup.NewService(db)

		var (
			data []byte
			err  error
		)
		switch args[0] {
		case "json":
			data, err = svc.ExportJSON(cmd.Context())
		case "yaml":
			data, err = svc.ExportYAML(cmd.Context())
		case "markdown":
			var since *time.Time
			if exportSince != "" {
				t, perr := time.Parse(dateLayout, exportSince)
				if perr != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			var md string
			md, err = svc.ExportMarkdown(cmd.Context(), since)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}

		path := exportOutput
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			name := backup.SuggestedFilename(time.Now())
			switch args[0] {
			case "yaml":
				name = strings.TrimSuffix(name, ".json") + ".yaml"
			case "markdown":
				name = strings.TrimSuffix(name, ".json") + ".md"
			}
			path = filepath.Join(path, name)
		}
		if err := os.WriteFile(path, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.Green("✓ Exported to %s", path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON backup",
	Long: `Import a JSON backup created by 'fitlog export json'.

MODES:

  merge     Upsert records by ID; existing records not in the file are kept (default)
  replace   Delete workouts, sets, cardio sessions, and custom exercises first

The import runs in a single transaction: on any error nothing is written.
Use --dry-run to validate the file and preview what would be imported.

EXAMPLES:

  fitlog import backup.json --dry-run
  fitlog import backup.json
  fitlog import backup.json --mode replace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := backup.ImportMode(importMode)
		if !mode.IsValid() {
			return fmt.Errorf("unknown mode: %s (use merge or replace)", importMode)
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		data, err := backup.ParseImportFile(raw)
		if err != nil {
			return err
		}

		validation := backup.ValidateImportFile(data)
		if !validation.Valid {
			color.Red("✗ %s is not a valid backup", args[0])
			for _, msg := range validation.Errors {
				fmt.Printf("  - %s\n", msg)
			}
			return errors.New("validation failed")
		}

		printPreview(validation.Preview)
		if importDryRun {
			fmt.Println("\nDry run: nothing was imported.")
			return nil
		}

		snap, err := backup.DecodeSnapshot(data)
		if err != nil {
			return err
		}
		result := backup.NewService(db).ImportData(cmd.Context(), snap, mode)
		if !result.Success {
			color.Red("✗ Import failed, no changes were made")
			for _, msg := range result.Errors {
				fmt.Printf("  - %s\n", msg)
			}
			return errors.New("import failed")
		}

		color.Green("✓ Imported %s (%s)", args[0], result.Mode)
		fmt.Printf("  %d exercises, %d workouts, %d sets, %d cardio sessions, %d body weight entries\n",
			result.Imported.Exercises, result.Imported.Workouts, result.Imported.WorkoutSets,
			result.Imported.CardioSessions, result.Imported.BodyWeightEntries)
		if result.Imported.Settings {
			fmt.Println("  settings restored")
		}
		return nil
	},
}

func printPreview(p *backup.Preview) {
	faint := color.New(color.Faint)
	fmt.Printf("Backup version %s", p.Version)
	if p.ExportDate != "" {
		fmt.Print(faint.Sprintf(" exported %s", p.ExportDate))
	}
	fmt.Println()
	fmt.Printf("  Exercises:          %d\n", p.Exercises)
	fmt.Printf("  Workouts:           %d\n", p.Workouts)
	fmt.Printf("  Sets:               %d\n", p.WorkoutSets)
	fmt.Printf("  Cardio sessions:    %d\n", p.CardioSessions)
	fmt.Printf("  Body weight:        %d\n", p.BodyWeightEntries)
	fmt.Printf("  Settings:           %t\n", p.HasSettings)
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file or directory (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "markdown only: skip entries before date (YYYY-MM-DD)")

	importCmd.Flags().StringVarP(&importMode, "mode", "m", string(backup.ModeMerge), "merge or replace")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate and preview without importing")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
