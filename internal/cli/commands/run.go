package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"fpt/internal/config"
	"fpt/internal/discovery"
	"fpt/internal/domain"
	"fpt/internal/execution"
	"fpt/internal/parser"
	"fpt/internal/platform"
	"fpt/internal/staging"
	"fpt/internal/storage"
	"fpt/internal/suite"
	"fpt/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	host      platform.Host
	filter    *discovery.Filter
	runner    *execution.Runner
	parser    *parser.FFmpegParser
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	host platform.Host,
	filter *discovery.Filter,
	runner *execution.Runner,
	parser *parser.FFmpegParser,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		host:      host,
		filter:    filter,
		runner:    runner,
		parser:    parser,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := rc.config

	// Resolve the plugin directory before anything is printed; a bad
	// directory makes the whole run pointless.
	pluginDir, err := cfg.ResolvePluginDir(executableDir())
	if err != nil {
		return err
	}
	cfg.PluginDir = pluginDir

	s, err := loadSuite(cfg)
	if err != nil {
		return err
	}

	cases := rc.filter.FilterCases(s.Cases, cfg.Only)
	if len(cases) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	rc.formatter.PrintHeader(rc.host)

	probe, err := rc.runner.Probe(ctx)
	if err != nil {
		return err
	}
	rc.formatter.PrintFFmpegVersion(rc.parser.ParseVersion(probe))

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	stager := staging.NewStager(pluginDir)
	rc.formatter.PrintStagingReport(stager.Stage(cfg.FFmpegBin, s, rc.host.LibExt))

	rc.formatter.PrintRunIntro(s)

	scanner := discovery.NewScanner(pluginDir, rc.host.LibExt)
	suiteRunner := execution.NewSuiteRunner(rc.runner, scanner)
	suiteRunner.SetReporter(rc.formatter)
	suiteRunner.SetProgress(ui.NewProgressBar(len(cases)))

	results, duration, err := suiteRunner.Execute(ctx, cases)
	if err != nil {
		return err
	}

	meta := domain.NewRunMeta(results, duration,
		rc.parser.ParseShortVersion(probe), rc.host.Uname, rc.host.LibExt, cfg.OutputDir)

	// A failed save must not eat the verdict: the summary prints from the
	// in-memory results either way, and the exit code stays tied to the
	// test outcomes alone.
	saveErr := rc.storage.Save(results, meta)
	if saveErr != nil {
		color.Yellow("Warning: failed to save test results: %v", saveErr)
	}

	rc.formatter.PrintSummary(meta)
	rc.formatter.PrintFailureTree(results)
	rc.formatter.PrintGeneratedFiles()
	if saveErr == nil {
		rc.formatter.PrintResultsSaved(cfg.ResultsPath())
	}

	if meta.Failed == 0 {
		return nil
	}

	if cfg.Flags.View {
		if output, loadErr := rc.storage.Load(); loadErr == nil {
			if viewErr := rc.viewer.View(output); viewErr != nil {
				color.Yellow("viewer: %v", viewErr)
			}
		}
	}

	return &domain.TestsFailedError{Failed: meta.Failed, Total: meta.Total}
}

// loadSuite returns the configured suite file, or the built-in suite when
// none is set.
func loadSuite(cfg *config.Config) (*suite.Suite, error) {
	if cfg.SuiteFile == "" {
		return suite.Builtin(), nil
	}
	return suite.Load(cfg.SuiteFile)
}

// executableDir returns the directory holding the running binary, used as
// a fallback base for relative plugin directories.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
