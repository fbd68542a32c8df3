// ABOUTME: Integration tests for the fitlog CLI.
// ABOUTME: Builds the binary and runs a full logging and backup workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	fitlogBinary := filepath.Join(projectRoot, "fitlog")

	buildCmd := exec.Command("go", "build", "-o", fitlogBinary, "./cmd/fitlog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(fitlogBinary)

	// Use temp data and config directories
	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", dataDir}, args...)
		cmd := exec.Command(fitlogBinary, fullArgs...)
		cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"))
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Test workout add
	output, err := run("workout", "add", "--notes", "push day")
	if err != nil {
		t.Fatalf("Failed to add workout: %v\n%s", err, output)
	}
	match := regexp.MustCompile(`ID: ([0-9a-f]{8})`).FindStringSubmatch(output)
	if match == nil {
		t.Fatalf("Expected workout ID in output, got: %s", output)
	}
	workoutID := match[1]

	// Test logging sets
	output, err = run("workout", "set", workoutID, "barbell bench press", "5", "100")
	if err != nil {
		t.Fatalf("Failed to add set: %v\n%s", err, output)
	}
	if !strings.Contains(output, "New personal record") {
		t.Errorf("Expected first set to be a record, got: %s", output)
	}
	output, err = run("workout", "set", workoutID, "barbell bench press", "5", "90")
	if err != nil {
		t.Fatalf("Failed to add set: %v\n%s", err, output)
	}
	if strings.Contains(output, "New personal record") {
		t.Errorf("Expected lighter set not to be a record, got: %s", output)
	}

	// Test workout show
	output, err = run("workout", "show", workoutID)
	if err != nil {
		t.Fatalf("Failed to show workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Barbell Bench Press") || !strings.Contains(output, "950.0 kg") {
		t.Errorf("Expected sets and volume in workout show, got: %s", output)
	}

	// Test cardio and body weight
	output, err = run("cardio", "add", "treadmill", "30", "--distance", "3")
	if err != nil {
		t.Fatalf("Failed to add cardio: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added treadmill session") {
		t.Errorf("Expected 'Added treadmill session' in output, got: %s", output)
	}
	output, err = run("weight", "add", "82.5")
	if err != nil {
		t.Fatalf("Failed to add weight: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged 82.5 kg") {
		t.Errorf("Expected 'Logged 82.5 kg' in output, got: %s", output)
	}

	// Test stats
	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to show stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Most trained:    chest") {
		t.Errorf("Expected chest as most trained, got: %s", output)
	}
	if !strings.Contains(output, "3.00 mi") {
		t.Errorf("Expected distance in miles, got: %s", output)
	}

	// Test export and dry-run import
	backupFile := filepath.Join(tmpDir, "backup.json")
	if output, err = run("export", "json", "-o", backupFile); err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	output, err = run("import", backupFile, "--dry-run")
	if err != nil {
		t.Fatalf("Failed to preview import: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Workouts:           1") || !strings.Contains(output, "Sets:               2") {
		t.Errorf("Expected preview counts, got: %s", output)
	}
}
