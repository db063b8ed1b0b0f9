package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kvsmoke/internal/domain"
)

// RunCopyFile is the name of the results copy written into the run folder.
const RunCopyFile = "results.json"

// Save writes run results to the configured JSON results file. If runFolder
// is set, a copy is also written into the run's own output folder so every
// run keeps its results next to the folders it produced.
func (s *JSONStorage) Save(results []domain.CheckResult, duration time.Duration, workers int, runFolder string) error {
	passed := 0
	failed := 0
	var failures []domain.CheckFailure
	for _, r := range results {
		if r.Success {
			passed++
			continue
		}
		failed++
		failure := domain.CheckFailure{
			CheckName: r.CheckName,
			Engine:    r.Engine,
			OutputDir: r.OutputDir,
			Output:    r.Output,
		}
		if r.Error != nil {
			failure.Message = r.Error.Error()
		}
		failures = append(failures, failure)
	}

	engine := ""
	if len(results) > 0 {
		engine = results[0].Engine
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalChecks:     len(results),
			FailedChecks:    failed,
			PassedChecks:    passed,
			Engine:          engine,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Timestamp:       time.Now().Format(time.RFC3339),
			RunFolder:       runFolder,
		},
		Details: failures,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if runFolder != "" {
		copyPath := filepath.Join(runFolder, RunCopyFile)
		if err := os.WriteFile(copyPath, data, 0644); err != nil {
			return fmt.Errorf("write results copy: %w", err)
		}
	}
	return nil
}

// Load reads the last run results from the configured JSON results file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetResultsPath()
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

// SaveOutput writes the full output to the configured JSON file (e.g. after resolved-status updates).
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
