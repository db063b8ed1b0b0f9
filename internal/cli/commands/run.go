package commands

import (
	"fmt"
	"path/filepath"

	"kvsmoke/internal/config"
	"kvsmoke/internal/harness"
	"kvsmoke/internal/outdir"
	"kvsmoke/internal/storage"
	"kvsmoke/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    *ui.ErrorViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.ErrorViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Select checks
	checks := harness.FilterByName(harness.Checks(), rc.config.Flags.NameFilter)
	if len(checks) == 0 {
		color.Yellow("No checks to run")
		return nil
	}

	// The provider is built here, after flags have been applied, so the run
	// timestamp is captured once for the whole run.
	provider := outdir.New(rc.config.GetOutputRoot())
	provider.SetLogOnly(rc.config.Flags.LogOnly)

	runner := harness.NewRunner(rc.config, provider)
	pool := harness.NewPool(rc.config, runner)

	// Create and set progress bar
	progressBar := ui.NewProgressBar(len(checks))
	pool.SetProgress(progressBar)

	var names []string
	for _, check := range checks {
		names = append(names, check.Name)
	}

	// Execute checks
	results, duration, err := pool.ExecuteWithOptions(names, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	// Save results
	runFolder := filepath.Join(rc.config.GetOutputRoot(), provider.Timestamp().Format(outdir.TimestampFormat))
	if err := rc.storage.Save(results, duration, rc.config.Workers, runFolder); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Print stats
	if err := rc.formatter.PrintMetaStats(); err != nil {
		return err
	}

	// Optionally open the failures viewer
	if rc.config.Flags.ViewFailures {
		var failed int
		for _, result := range results {
			if !result.Success {
				failed++
			}
		}
		if failed > 0 {
			output, err := rc.storage.Load()
			if err != nil {
				return err
			}
			return rc.viewer.View(output)
		}
	}

	return nil
}
