package harness

import (
	"context"
	"sync"
	"time"

	"kvsmoke/internal/config"
	"kvsmoke/internal/domain"
	"kvsmoke/internal/ui"
)

// Pool manages a pool of workers for parallel check execution
type Pool struct {
	config   *config.Config
	runner   *Runner
	progress *ui.ProgressBar
}

// NewPool creates a new Pool
func NewPool(cfg *config.Config, runner *Runner) *Pool {
	return &Pool{
		config: cfg,
		runner: runner,
	}
}

// SetProgress sets the progress bar for the pool
func (p *Pool) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Execute executes checks in parallel using the worker pool (no fail-fast).
func (p *Pool) Execute(checkNames []string) ([]domain.CheckResult, time.Duration, error) {
	return p.ExecuteWithOptions(checkNames, false)
}

// ExecuteWithOptions executes checks with optional fail-fast (stop on first failure).
func (p *Pool) ExecuteWithOptions(checkNames []string, failFast bool) ([]domain.CheckResult, time.Duration, error) {
	if len(checkNames) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return p.executeAll(checkNames)
	}
	return p.executeFailFast(checkNames)
}

// executeAll runs all checks.
func (p *Pool) executeAll(checkNames []string) ([]domain.CheckResult, time.Duration, error) {
	queue := make(chan string, len(checkNames))
	results := make(chan domain.CheckResult, len(checkNames))
	for _, name := range checkNames {
		queue <- name
	}
	close(queue)

	var mu sync.Mutex
	var completed, passed, failed int
	startTime := time.Now()
	workerCount := p.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for name := range queue {
				result := p.runner.Run(name, workerID)
				results <- result
				mu.Lock()
				completed++
				if result.Success {
					passed++
				} else {
					failed++
				}
				if p.progress != nil {
					p.progress.Update(completed, passed, failed)
				}
				mu.Unlock()
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CheckResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if p.progress != nil {
		p.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

// executeFailFast runs checks and stops after the first failure.
func (p *Pool) executeFailFast(checkNames []string) ([]domain.CheckResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := make(chan string, 1)
	results := make(chan domain.CheckResult, len(checkNames))

	go func() {
		defer close(queue)
		for _, name := range checkNames {
			select {
			case <-ctx.Done():
				return
			case queue <- name:
			}
		}
	}()

	var mu sync.Mutex
	var completed, passed, failed int
	var seenFailure bool
	startTime := time.Now()
	workerCount := p.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for name := range queue {
				result := p.runner.Run(name, workerID)
				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				results <- result
				mu.Lock()
				completed++
				if result.Success {
					passed++
				} else {
					failed++
				}
				if p.progress != nil {
					p.progress.Update(completed, passed, failed)
				}
				if !result.Success {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CheckResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if p.progress != nil {
		p.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
