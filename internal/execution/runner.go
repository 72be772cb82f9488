package execution

import (
	"context"
	"fmt"
	"strings"

	"fpt/internal/config"
	"fpt/internal/domain"
	"fpt/internal/platform"
)

// noColorEnv keeps ffmpeg's log output free of ANSI sequences so it can be
// parsed and stored.
const noColorEnv = "AV_LOG_FORCE_NOCOLOR=1"

// Runner builds and executes the ffmpeg invocation for a single test case
type Runner struct {
	config    *config.Config
	executor  CommandExecutor
	converter *platform.Converter
	libExt    string
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, executor CommandExecutor, converter *platform.Converter, libExt string) *Runner {
	return &Runner{config: cfg, executor: executor, converter: converter, libExt: libExt}
}

// Probe verifies the ffmpeg binary responds to -version and returns the
// probe output.
func (r *Runner) Probe(ctx context.Context) (string, error) {
	result := r.executor.Execute(ctx, r.config.FFmpegBin, []string{"-version"}, nil)
	if result.Err != nil {
		return "", fmt.Errorf("ffmpeg not found: %s: %w", r.config.FFmpegBin, result.Err)
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("ffmpeg not found: %s", r.config.FFmpegBin)
	}
	return result.Output, nil
}

// Run executes ffmpeg for one test case. The caller has already confirmed
// the plugin artifact exists.
func (r *Runner) Run(ctx context.Context, c domain.TestCase) domain.TestResult {
	args := r.BuildArgs(c)
	cmdResult := r.executor.Execute(ctx, r.config.FFmpegBin, args, []string{noColorEnv})

	result := domain.TestResult{
		Case:     c,
		Status:   domain.StatusFailed,
		Command:  commandLine(r.config.FFmpegBin, args),
		Output:   cmdResult.Output,
		ExitCode: cmdResult.ExitCode,
		Err:      cmdResult.Err,
		Duration: cmdResult.Duration,
	}
	if cmdResult.Success() {
		result.Status = domain.StatusPassed
	}

	return result
}

// BuildArgs assembles the ffmpeg argument list for a test case. The plugin
// is referenced by bare file name; staging has put it next to the binary.
// Output paths go through the host path converter, so the final argument
// list never contains backslashes.
func (r *Runner) BuildArgs(c domain.TestCase) []string {
	args := []string{"-hide_banner", "-y"}
	for _, input := range c.Inputs {
		args = append(args, "-f", "lavfi", "-i", input)
	}

	filterFlag := "-vf"
	if c.Complex {
		filterFlag = "-filter_complex"
	}
	args = append(args, filterFlag, c.RenderFilter(c.ArtifactFile(r.libExt)))

	for _, out := range c.Outputs {
		if out.Map != "" {
			args = append(args, "-map", out.Map)
		}
		args = append(args, r.converter.Convert(r.config.OutputFilePath(out.Name)))
	}

	return args
}

func commandLine(bin string, args []string) string {
	return strings.Join(append([]string{bin}, args...), " ")
}
