package execution

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"fpt/internal/domain"
)

// CommandExecutor runs external commands and reports their outcome
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args []string, env []string) domain.CommandResult
}

// SystemExecutor runs commands on the real system
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs the command and captures its combined output. A nonzero
// exit lands in ExitCode; Err is reserved for failures to launch at all.
func (e *SystemExecutor) Execute(ctx context.Context, name string, args []string, env []string) domain.CommandResult {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)

	start := time.Now()
	output, err := cmd.CombinedOutput()

	result := domain.CommandResult{
		Output:   string(output),
		Duration: time.Since(start),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			result.Err = err
		}
	}

	return result
}
