package ui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"kvsmoke/internal/config"
	"kvsmoke/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	// Clear terminal screen
	fmt.Print("\033[2J\033[H")

	resultsPath := f.config.GetResultsPath()

	// Read JSON file
	data, err := os.ReadFile(resultsPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	// Parse JSON
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Smoke Run Statistics                       ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	// Total Checks
	fmt.Printf("│ %-31s │ ", "Total Checks")
	color.White("%-27d │\n", meta.TotalChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Passed Checks
	fmt.Printf("│ %-31s │ ", "Passed Checks")
	color.Green("%-27d │\n", meta.PassedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Failed Checks
	fmt.Printf("│ %-31s │ ", "Failed Checks")
	color.Red("%-27d │\n", meta.FailedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Engine
	fmt.Printf("│ %-31s │ ", "Engine")
	color.White("%-27s │\n", meta.Engine)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Duration
	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Workers
	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Timestamp
	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	if meta.RunFolder != "" {
		fmt.Println()
		color.White("Output folder: %s", meta.RunFolder)
	}

	// Print summary line
	fmt.Println()
	if meta.FailedChecks == 0 {
		color.Green("✓ All checks passed!")
	} else {
		color.Red("✗ %d check(s) failed", meta.FailedChecks)
		fmt.Println()
		f.printFailedChecks(output.Details)
	}

	return nil
}

// printFailedChecks prints the failed checks with their output folders
func (f *Formatter) printFailedChecks(failures []domain.CheckFailure) {
	for _, failure := range failures {
		color.Yellow("  %s (%s)", failure.CheckName, failure.Engine)
		if failure.Message != "" {
			color.Red("    |_ %s", failure.Message)
		}
		if failure.OutputDir != "" {
			color.White("    |_ output: %s", failure.OutputDir)
		}
	}
}

// PrintCheckList prints the registered smoke checks
func (f *Formatter) PrintCheckList(checks []domain.Check) {
	color.Cyan("Registered checks (%d):", len(checks))
	fmt.Println()
	for i, check := range checks {
		color.Yellow("  %d. %s", i+1, check.Name)
		if check.Description != "" {
			color.White("     %s", check.Description)
		}
	}
}

// PrintRunList prints past run folders, newest first
func (f *Formatter) PrintRunList(runs []domain.Run) {
	color.Cyan("Past runs under %s (%d):", f.config.GetOutputRoot(), len(runs))
	fmt.Println()
	for _, run := range runs {
		color.Yellow("  %s", run.Timestamp)
		for _, suite := range run.Suites {
			color.White("    |_ %s (%d checks)", suite.Name, len(suite.Tests))
		}
	}
}
