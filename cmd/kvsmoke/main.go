package main

import (
	"fmt"
	"os"

	"kvsmoke/internal/cli"
	"kvsmoke/internal/cli/commands"
	"kvsmoke/internal/config"

	// Available store engines
	_ "kvsmoke/internal/store/bolt"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "kvsmoke",
		Short:   "Smoke-test harness for embedded key-value stores",
		Long:    `A smoke-test harness for embedded key-value storage engines. Runs lifecycle checks (open, put, flush, close) against an engine, giving every check its own timestamped output folder that is kept for inspection after the run.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
