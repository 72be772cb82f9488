package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a test case. A case starts pending, is
// either skipped (artifact missing) or enters running, and ends passed or
// failed. Terminal states are never revisited.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusSkipped Status = "skipped"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
)

// CommandResult captures one external command invocation.
type CommandResult struct {
	Output   string // combined stdout and stderr
	ExitCode int    // -1 when the command could not be launched
	Duration time.Duration
	Err      error // launch error; nil when the process ran
}

// Success reports whether the command ran and exited zero.
func (r CommandResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// TestResult is the terminal outcome of one test case.
type TestResult struct {
	Case     TestCase
	Status   Status
	Artifact string // converted artifact path, for display
	Command  string // rendered command line; empty for skipped cases
	Output   string // captured ffmpeg output
	ExitCode int
	Err      error // launch error, if any
	Duration time.Duration
}

// Summary aggregates terminal statuses across a run.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// Summarize reduces a result list to its summary counts.
func Summarize(results []TestResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

// TestsFailedError is returned by the run command when any case failed; main
// translates it into exit code 1 without reprinting the summary.
type TestsFailedError struct {
	Failed int
	Total  int
}

func (e *TestsFailedError) Error() string {
	return fmt.Sprintf("%d of %d plugin test(s) failed", e.Failed, e.Total)
}
