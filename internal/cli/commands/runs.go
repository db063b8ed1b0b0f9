package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kvsmoke/internal/config"
	"kvsmoke/internal/runs"
	"kvsmoke/internal/ui"
)

// RunsCommand handles the runs command
type RunsCommand struct {
	config    *config.Config
	scanner   *runs.Scanner
	formatter *ui.Formatter
}

// NewRunsCommand creates a new RunsCommand
func NewRunsCommand(cfg *config.Config, scanner *runs.Scanner, formatter *ui.Formatter) *RunsCommand {
	return &RunsCommand{
		config:    cfg,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunsCommand) Execute(cmd *cobra.Command, args []string) error {
	found, err := rc.scanner.Scan(rc.config.GetOutputRoot())
	if err != nil {
		return err
	}

	if len(found) == 0 {
		color.Yellow("No past runs under %s", rc.config.GetOutputRoot())
		return nil
	}

	rc.formatter.PrintRunList(found)
	return nil
}
