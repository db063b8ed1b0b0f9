package commands

import (
	"kvsmoke/internal/cli"
	"kvsmoke/internal/config"
	"kvsmoke/internal/runs"
	"kvsmoke/internal/storage"
	"kvsmoke/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Runs     *RunsCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	scanner := runs.NewScanner()
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, jsonStorage, formatter, errorViewer),
		List:     NewListCommand(cfg, formatter),
		Runs:     NewRunsCommand(cfg, scanner, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the smoke suite against a store engine",
		Long:  "Execute the lifecycle smoke checks against the configured engine using parallel workers",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 4, "Number of parallel workers to use")
	runCmd.Flags().StringVarP(&flags.Engine, "engine", "e", "", "Store engine to smoke-test (default from config)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter checks by name pattern (supports wildcards, e.g. 'put*' or '*close*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first check failure")
	runCmd.Flags().BoolVar(&flags.LogOnly, "log-only", false, "Log output folder creation failures instead of aborting the run")
	runCmd.Flags().StringVarP(&flags.OutputRoot, "output-root", "o", "", "Root folder for test output (default ../test-output)")
	runCmd.Flags().BoolVar(&flags.ViewFailures, "view-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered smoke checks",
		Long:  "List the lifecycle smoke checks without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter checks by name pattern (supports wildcards, e.g. 'put*' or '*close*')")
	rootCmd.AddCommand(listCmd)

	// Runs command
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List past run output folders",
		Long:  "Scan the output root and list past run folders, newest first",
		RunE:  c.Runs.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runsCmd.Flags().StringVarP(&flags.OutputRoot, "output-root", "o", "", "Root folder for test output (default ../test-output)")
	rootCmd.AddCommand(runsCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failed checks interactively",
		Long:  "Display failed checks from the last smoke run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
