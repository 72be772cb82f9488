package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"fpt/internal/config"
	"fpt/internal/domain"
	"fpt/internal/parser"
	"fpt/internal/platform"
	"fpt/internal/suite"
)

// Formatter formats and displays output
type Formatter struct {
	config    *config.Config
	converter *platform.Converter
	parser    parser.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, converter *platform.Converter, p parser.Parser) *Formatter {
	return &Formatter{
		config:    cfg,
		converter: converter,
		parser:    p,
	}
}

// PrintHeader displays the harness banner and the resolved configuration.
func (f *Formatter) PrintHeader(host platform.Host) {
	color.Cyan("╔════════════════════════════════════════╗")
	color.Cyan("║       FFmpeg Plugin Test Harness       ║")
	color.Cyan("╚════════════════════════════════════════╝")
	fmt.Printf("Detected OS: %s\n", host.Uname)
	fmt.Printf("Plugin extension: %s\n", host.LibExt)
	fmt.Printf("FFmpeg binary: %s\n", f.config.FFmpegBin)
	fmt.Printf("Plugin directory: %s\n", f.converter.Convert(f.config.PluginDir))
	fmt.Printf("Output directory: %s\n", f.converter.Convert(f.config.OutputDir))
	fmt.Println()
}

// PrintFFmpegVersion displays the version line taken from the probe output.
func (f *Formatter) PrintFFmpegVersion(version string) {
	fmt.Println("FFmpeg version:")
	fmt.Println(version)
	fmt.Println()
}

// PrintStagingReport lists the artifacts copied next to the ffmpeg binary.
// Nothing is printed when staging did not happen.
func (f *Formatter) PrintStagingReport(report domain.StagingReport) {
	if report.Dir == "" {
		return
	}

	fmt.Printf("Copying plugins and dependencies to FFmpeg directory: %s\n", f.converter.Convert(report.Dir))
	for _, name := range report.Copied {
		fmt.Printf("  Copied: %s\n", name)
	}
	for _, w := range report.Warnings {
		color.Yellow("  Warning: failed to copy %s: %s", w.Name, w.Reason)
	}
	fmt.Println()
}

// PrintRunIntro announces the synthetic input parameters.
func (f *Formatter) PrintRunIntro(s *suite.Suite) {
	fmt.Printf("Testing plugins with lavfi input (%dx%d, %ds, %dfps)...\n", s.Width, s.Height, s.Duration, s.FPS)
}

// PrintCaseStart prints the banner for one test case.
func (f *Formatter) PrintCaseStart(number, total int, c domain.TestCase) {
	fmt.Println()
	fmt.Println(strings.Repeat("-", 40))
	color.Cyan("Test %d/%d: %s", number, total, c.Name)
	fmt.Println(strings.Repeat("-", 40))
}

// PrintArtifactCheck reports whether a plugin artifact was found.
func (f *Formatter) PrintArtifactCheck(path string, found bool) {
	if found {
		color.Green("[OK] Found: %s", f.converter.Convert(path))
	} else {
		color.Yellow("[SKIP] Not found: %s", f.converter.Convert(path))
	}
}

// PrintCaseResult prints the outcome line(s) for a finished case.
func (f *Formatter) PrintCaseResult(result domain.TestResult) {
	c := result.Case

	if f.config.Verbose && result.Command != "" {
		fmt.Printf("Command: %s\n\n", result.Command)
	}

	switch result.Status {
	case domain.StatusPassed:
		if len(c.Outputs) == 1 {
			color.Green("[PASS] %s test completed: %s", c.Name, f.outputPath(c.Outputs[0].Name))
			return
		}
		color.Green("[PASS] %s test completed:", c.Name)
		for _, out := range c.Outputs {
			line := fmt.Sprintf("       - %s", f.outputPath(out.Name))
			if out.Note != "" {
				line += fmt.Sprintf(" (%s)", out.Note)
			}
			color.Green("%s", line)
		}
	case domain.StatusFailed:
		color.Red("[FAIL] %s test failed", c.Name)
		if detail := f.parser.ParseFailure(result); detail.Message != "" {
			color.Red("       %s", detail.Message)
		}
		if f.config.Verbose && result.Output != "" {
			fmt.Println()
			fmt.Println(result.Output)
		}
	}
}

// PrintSummary displays the run statistics table.
func (f *Formatter) PrintSummary(meta domain.RunMeta) {
	fmt.Println()
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                      Plugin Test Summary                      ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.Total)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", meta.Passed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", meta.Failed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped")
	color.Yellow("%-27d │\n", meta.Skipped)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	switch {
	case meta.Failed > 0:
		color.Red("✗ %d plugin test(s) failed", meta.Failed)
	case meta.Passed == 0 && meta.Skipped > 0:
		color.Yellow("All tests were skipped; no plugin artifacts found")
	default:
		color.Green("✓ All tests passed!")
	}
	fmt.Printf("Output files are in: %s\n", f.converter.Convert(f.config.OutputDir))
}

// PrintFailureTree lists failed cases with their diagnostics.
func (f *Formatter) PrintFailureTree(results []domain.TestResult) {
	var failed []domain.TestResult
	for _, r := range results {
		if r.Status == domain.StatusFailed {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Failed tests:")
	for i, r := range failed {
		isLast := i == len(failed)-1
		connector, childPrefix := "├── ", "│   "
		if isLast {
			connector, childPrefix = "└── ", "    "
		}

		color.Red("%s%s", connector, r.Case.Name)
		detail := f.parser.ParseFailure(r)
		if detail.Message != "" {
			fmt.Printf("%s└── %s\n", childPrefix, color.YellowString(detail.Message))
		}
	}
}

// PrintGeneratedFiles lists the media files present in the output directory.
func (f *Formatter) PrintGeneratedFiles() {
	fmt.Println()
	fmt.Println("Generated files:")

	files, err := filepath.Glob(filepath.Join(f.config.OutputDir, "*.mp4"))
	if err != nil || len(files) == 0 {
		fmt.Println("No output files generated")
		return
	}

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		fmt.Printf("  %s (%s)\n", filepath.Base(file), formatSize(info.Size()))
	}
}

// PrintResultsSaved reports where the results JSON landed.
func (f *Formatter) PrintResultsSaved(path string) {
	fmt.Println()
	color.Cyan("Results saved to: %s", f.converter.Convert(path))
}

// PrintTestList prints the suite's cases as a tree. Cases whose plugin
// artifact is missing are marked; showOutputs adds the declared output
// files as children.
func (f *Formatter) PrintTestList(s *suite.Suite, ext string, missing map[string]bool, showOutputs bool) {
	color.Green("Suite %s: %d test case(s)\n", s.Name, len(s.Cases))

	for i, c := range s.Cases {
		isLast := i == len(s.Cases)-1
		connector, childPrefix := "├── ", "│   "
		if isLast {
			connector, childPrefix = "└── ", "    "
		}

		marker := ""
		if missing[c.Plugin] {
			marker = " " + color.YellowString("[missing]")
		}
		color.Cyan("%s%s (%s)%s", connector, c.Name, c.ArtifactFile(ext), marker)

		if !showOutputs {
			continue
		}
		for j, out := range c.Outputs {
			outConnector := "├── "
			if j == len(c.Outputs)-1 {
				outConnector = "└── "
			}
			name := out.Name
			if out.Note != "" {
				name += fmt.Sprintf(" (%s)", out.Note)
			}
			fmt.Printf("%s%s%s\n", childPrefix, outConnector, color.YellowString(name))
		}
	}
}

func (f *Formatter) outputPath(name string) string {
	return f.converter.Convert(f.config.OutputFilePath(name))
}

// formatSize renders a file size the way the listing shows it: K below
// one MiB, M above.
func formatSize(bytes int64) string {
	kb := float64(bytes) / 1024.0
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1fK", kb)
	}
	return fmt.Sprintf("%.1fM", kb/1024.0)
}
