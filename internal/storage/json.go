package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fpt/internal/domain"
)

// Save writes test results and run metadata to the configured JSON file.
func (s *JSONStorage) Save(results []domain.TestResult, meta domain.RunMeta) error {
	records := make([]domain.RunRecord, 0, len(results))
	for _, r := range results {
		records = append(records, domain.NewRunRecord(r))
	}

	return s.SaveOutput(&domain.RunOutput{
		Meta:    meta,
		Results: records,
	})
}

// Load reads the last run from the configured JSON file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.ResultsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}

	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g. after
// the viewer toggles reviewed flags).
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.ResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
