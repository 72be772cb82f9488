package execution

import (
	"context"
	"fmt"
	"time"

	"fpt/internal/discovery"
	"fpt/internal/domain"
	"fpt/internal/ui"
)

// Reporter narrates a run case by case. A nil reporter runs silently.
type Reporter interface {
	PrintCaseStart(number, total int, c domain.TestCase)
	PrintArtifactCheck(path string, found bool)
	PrintCaseResult(result domain.TestResult)
}

// SuiteRunner runs test cases one at a time, skipping cases whose plugin
// artifact is missing. Cases share the artifacts staged next to one ffmpeg
// binary and ffmpeg saturates the machine on its own, so there is no
// parallel mode.
type SuiteRunner struct {
	runner   *Runner
	scanner  *discovery.Scanner
	progress *ui.ProgressBar
	reporter Reporter
}

// NewSuiteRunner creates a new SuiteRunner
func NewSuiteRunner(runner *Runner, scanner *discovery.Scanner) *SuiteRunner {
	return &SuiteRunner{runner: runner, scanner: scanner}
}

// SetProgress sets the progress bar updated after every case
func (sr *SuiteRunner) SetProgress(progress *ui.ProgressBar) {
	sr.progress = progress
}

// SetReporter sets the reporter narrating each case
func (sr *SuiteRunner) SetReporter(reporter Reporter) {
	sr.reporter = reporter
}

// Execute runs all cases and returns one result per case, in case order.
func (sr *SuiteRunner) Execute(ctx context.Context, cases []domain.TestCase) ([]domain.TestResult, time.Duration, error) {
	if len(cases) == 0 {
		return nil, 0, nil
	}

	start := time.Now()
	results := make([]domain.TestResult, 0, len(cases))
	var passed, failed, skipped int

	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, time.Since(start), err
		}

		if sr.reporter != nil {
			sr.reporter.PrintCaseStart(i+1, len(cases), c)
		}
		result := sr.runCase(ctx, c)
		if sr.reporter != nil {
			sr.reporter.PrintCaseResult(result)
		}
		results = append(results, result)

		switch result.Status {
		case domain.StatusPassed:
			passed++
		case domain.StatusFailed:
			failed++
		case domain.StatusSkipped:
			skipped++
		}
		if sr.progress != nil {
			sr.progress.Update(len(results), passed, failed, skipped)
		}
	}

	if sr.progress != nil {
		sr.progress.Finish()
	}

	return results, time.Since(start), nil
}

func (sr *SuiteRunner) runCase(ctx context.Context, c domain.TestCase) domain.TestResult {
	artifact, found := sr.scanner.Locate(c)
	if sr.reporter != nil {
		sr.reporter.PrintArtifactCheck(artifact, found)
	}
	if !found {
		return domain.TestResult{
			Case:     c,
			Status:   domain.StatusSkipped,
			Artifact: artifact,
			Err:      fmt.Errorf("plugin not found: %s", artifact),
		}
	}

	result := sr.runner.Run(ctx, c)
	result.Artifact = artifact
	return result
}
