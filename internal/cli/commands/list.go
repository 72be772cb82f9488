package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fpt/internal/config"
	"fpt/internal/discovery"
	"fpt/internal/platform"
	"fpt/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	host      platform.Host
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	host platform.Host,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		host:      host,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.config

	s, err := loadSuite(cfg)
	if err != nil {
		return err
	}

	s.Cases = lc.filter.FilterCases(s.Cases, cfg.Only)
	if len(s.Cases) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	// An unresolvable plugin directory is not fatal here; every artifact
	// is simply reported missing.
	present := make(map[string]bool)
	if pluginDir, err := cfg.ResolvePluginDir(executableDir()); err == nil {
		scanner := discovery.NewScanner(pluginDir, lc.host.LibExt)
		libs, err := scanner.Scan()
		if err != nil {
			return err
		}
		for _, lib := range libs {
			present[lib] = true
		}
	}

	missing := make(map[string]bool)
	for _, c := range s.Cases {
		if !present[c.ArtifactFile(lc.host.LibExt)] {
			missing[c.Plugin] = true
		}
	}

	lc.formatter.PrintTestList(s, lc.host.LibExt, missing, cfg.Flags.Outputs)
	return nil
}
