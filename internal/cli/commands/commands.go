package commands

import (
	"os"

	"fpt/internal/cli"
	"fpt/internal/config"
	"fpt/internal/discovery"
	"fpt/internal/execution"
	"fpt/internal/parser"
	"fpt/internal/platform"
	"fpt/internal/storage"
	"fpt/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	Env  *EnvCommand
	View *ViewCommand
}

// NewCommands creates all commands with dependencies. The host environment
// is detected once here; everything downstream works off the same value.
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	host := platform.DetectHost(os.Getenv, platform.SystemCommandOutput)
	converter := platform.NewConverter(host, platform.SystemCommandOutput)
	executor := execution.NewSystemExecutor()
	runner := execution.NewRunner(cfg, executor, converter, host.LibExt)
	filter := discovery.NewFilter()
	ffmpegParser := parser.NewFFmpegParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, converter, ffmpegParser)
	viewer := ui.NewResultViewer(jsonStorage)

	return &Commands{
		Run:  NewRunCommand(cfg, host, filter, runner, ffmpegParser, jsonStorage, formatter, viewer),
		List: NewListCommand(cfg, host, filter, formatter),
		Env:  NewEnvCommand(cfg, host, converter),
		View: NewViewCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the plugin test suite",
		Long:  "Stage plugin libraries next to the ffmpeg binary and exercise each one against synthetic lavfi input",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Resolve config from flags, environment, and defaults after parsing
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.FFmpegBin, "ffmpeg", "f", "", "FFmpeg binary to test with (default $FFMPEG_BIN, then \"ffmpeg\")")
	runCmd.Flags().StringVarP(&flags.PluginDir, "plugin-dir", "p", "", "Directory containing the built plugin libraries (default $PLUGIN_DIR, then ./build/src)")
	runCmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", "", "Directory for generated media and results (default $OUTPUT_DIR, then ./build/test_output)")
	runCmd.Flags().StringVarP(&flags.SuiteFile, "suite", "s", "", "YAML suite file replacing the built-in OpenCV plugin suite")
	runCmd.Flags().StringVar(&flags.Only, "only", "", "Run only tests matching the pattern (supports wildcards, e.g. 'blur' or '*frames*')")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print the full ffmpeg command and output for each test")
	runCmd.Flags().BoolVar(&flags.View, "view", false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the suite's test cases",
		Long:  "Show the test cases the suite defines and whether each plugin artifact is present, without running ffmpeg",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.PluginDir, "plugin-dir", "p", "", "Directory containing the built plugin libraries (default $PLUGIN_DIR, then ./build/src)")
	listCmd.Flags().StringVarP(&flags.SuiteFile, "suite", "s", "", "YAML suite file replacing the built-in OpenCV plugin suite")
	listCmd.Flags().StringVar(&flags.Only, "only", "", "List only tests matching the pattern (supports wildcards, e.g. 'blur' or '*frames*')")
	listCmd.Flags().BoolVarP(&flags.Outputs, "outputs", "c", false, "Show the output files each test declares")
	rootCmd.AddCommand(listCmd)

	// Env command
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show the detected host environment",
		Long:  "Display the detected OS flavor, plugin extension, path conversion scheme, and resolved configuration",
		RunE:  c.Env.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	envCmd.Flags().StringVarP(&flags.FFmpegBin, "ffmpeg", "f", "", "FFmpeg binary to test with (default $FFMPEG_BIN, then \"ffmpeg\")")
	envCmd.Flags().StringVarP(&flags.PluginDir, "plugin-dir", "p", "", "Directory containing the built plugin libraries (default $PLUGIN_DIR, then ./build/src)")
	envCmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", "", "Directory for generated media and results (default $OUTPUT_DIR, then ./build/test_output)")
	rootCmd.AddCommand(envCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "View last run failures interactively",
		Long:  "Display failures from the last test run in an interactive viewer",
		RunE:  c.View.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	viewCmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", "", "Directory holding the results file (default $OUTPUT_DIR, then ./build/test_output)")
	rootCmd.AddCommand(viewCmd)
}
