package commands

import (
	"fmt"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fpt/internal/config"
	"fpt/internal/platform"
)

// EnvCommand handles the env command
type EnvCommand struct {
	config    *config.Config
	host      platform.Host
	converter *platform.Converter
}

// NewEnvCommand creates a new EnvCommand
func NewEnvCommand(cfg *config.Config, host platform.Host, converter *platform.Converter) *EnvCommand {
	return &EnvCommand{
		config:    cfg,
		host:      host,
		converter: converter,
	}
}

// Execute runs the command
func (ec *EnvCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := ec.config

	color.Cyan("Host environment")
	fmt.Printf("Detected OS: %s\n", ec.host.Uname)
	fmt.Printf("OS: %s\n", ec.host.OS)
	fmt.Printf("Flavor: %s\n", ec.host.Flavor)
	fmt.Printf("Plugin extension: %s\n", ec.host.LibExt)
	if path, err := exec.LookPath("cygpath"); err == nil {
		fmt.Printf("cygpath: %s\n", path)
	} else {
		fmt.Println("cygpath: not found")
	}
	fmt.Println()

	color.Cyan("Configuration")
	fmt.Printf("FFmpeg binary: %s\n", cfg.FFmpegBin)
	if pluginDir, err := cfg.ResolvePluginDir(executableDir()); err == nil {
		fmt.Printf("Plugin directory: %s\n", ec.converter.Convert(pluginDir))
	} else {
		fmt.Printf("Plugin directory: %s (not found)\n", ec.converter.Convert(cfg.PluginDir))
	}
	fmt.Printf("Output directory: %s\n", ec.converter.Convert(cfg.OutputDir))
	fmt.Printf("Results file: %s\n", ec.converter.Convert(cfg.ResultsPath()))
	if cfg.SuiteFile != "" {
		fmt.Printf("Suite file: %s\n", cfg.SuiteFile)
	} else {
		fmt.Println("Suite file: built-in")
	}

	return nil
}
