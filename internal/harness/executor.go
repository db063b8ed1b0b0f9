package harness

import (
	"time"

	"kvsmoke/internal/domain"
)

// Executor executes checks and returns results
type Executor interface {
	Execute(checkNames []string) ([]domain.CheckResult, time.Duration, error)
}
