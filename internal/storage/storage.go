package storage

import (
	"time"

	"kvsmoke/internal/config"
	"kvsmoke/internal/domain"
)

// Storage persists and loads smoke run results (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.CheckResult, duration time.Duration, workers int, runFolder string) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved-status updates).
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
