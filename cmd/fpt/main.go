package main

import (
	"errors"
	"fmt"
	"os"

	"fpt/internal/cli"
	"fpt/internal/cli/commands"
	"fpt/internal/config"
	"fpt/internal/domain"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "fpt",
		Short:   "FFmpeg filter plugin test harness",
		Long:    `A test harness for ffmpeg filter plugins. Stages built plugin libraries next to the ffmpeg binary, runs each one against synthetic lavfi input, and reports which plugins load and filter correctly.`,
		Version: version,
		// The run command prints its own summary; keep cobra from adding
		// usage text or a second error line on failure.
		SilenceUsage:  true,
		SilenceErrors: true,
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
		var failed *domain.TestsFailedError
		if !errors.As(err, &failed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
