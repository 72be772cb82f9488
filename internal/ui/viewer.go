package ui

import "fpt/internal/domain"

// Viewer displays test results in an interactive TUI
type Viewer interface {
	View(output *domain.RunOutput) error
}
