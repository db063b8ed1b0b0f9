package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kvsmoke/internal/config"
	"kvsmoke/internal/harness"
	"kvsmoke/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	checks := harness.FilterByName(harness.Checks(), lc.config.Flags.NameFilter)

	if len(checks) == 0 {
		color.Yellow("No checks found")
		return nil
	}

	lc.formatter.PrintCheckList(checks)
	return nil
}
