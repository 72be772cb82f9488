package storage

import (
	"fpt/internal/config"
	"fpt/internal/domain"
)

// Storage persists and loads test run results (e.g. for the view command).
type Storage interface {
	Save(results []domain.TestResult, meta domain.RunMeta) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output back (e.g. after the viewer marks
	// failures as reviewed).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured results path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
