package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		expected Summary
	}{
		{
			name:     "empty run",
			statuses: nil,
			expected: Summary{},
		},
		{
			name:     "all passed",
			statuses: []Status{StatusPassed, StatusPassed, StatusPassed, StatusPassed},
			expected: Summary{Total: 4, Passed: 4},
		},
		{
			name:     "mixed outcomes",
			statuses: []Status{StatusPassed, StatusFailed, StatusSkipped, StatusSkipped},
			expected: Summary{Total: 4, Passed: 1, Failed: 1, Skipped: 2},
		},
		{
			name:     "all skipped",
			statuses: []Status{StatusSkipped, StatusSkipped, StatusSkipped, StatusSkipped},
			expected: Summary{Total: 4, Skipped: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []TestResult
			for _, st := range tt.statuses {
				results = append(results, TestResult{Status: st})
			}
			got := Summarize(results)
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
			if got.Passed+got.Failed+got.Skipped != got.Total {
				t.Errorf("counts do not add up: %+v", got)
			}
		})
	}
}

func TestCommandResult_Success(t *testing.T) {
	tests := []struct {
		name     string
		result   CommandResult
		expected bool
	}{
		{name: "clean exit", result: CommandResult{ExitCode: 0}, expected: true},
		{name: "nonzero exit", result: CommandResult{ExitCode: 1}, expected: false},
		{name: "launch error", result: CommandResult{ExitCode: -1, Err: errors.New("not found")}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Success(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTestsFailedError(t *testing.T) {
	err := fmt.Errorf("run: %w", &TestsFailedError{Failed: 2, Total: 4})

	var tf *TestsFailedError
	if !errors.As(err, &tf) {
		t.Fatal("expected errors.As to unwrap TestsFailedError")
	}
	if tf.Failed != 2 || tf.Total != 4 {
		t.Errorf("unexpected counts: %+v", tf)
	}
	if tf.Error() != "2 of 4 plugin test(s) failed" {
		t.Errorf("unexpected message: %s", tf.Error())
	}
}
