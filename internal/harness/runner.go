package harness

import (
	"fmt"
	"time"

	"kvsmoke/internal/config"
	"kvsmoke/internal/domain"
	"kvsmoke/internal/outdir"
	"kvsmoke/internal/store"
)

// Runner executes a single smoke check
type Runner struct {
	config   *config.Config
	provider *outdir.Provider
}

// NewRunner creates a new Runner sharing one output folder provider, so
// every check of a run lands under the same run timestamp.
func NewRunner(cfg *config.Config, provider *outdir.Provider) *Runner {
	return &Runner{config: cfg, provider: provider}
}

// Provider returns the output folder provider used by this runner.
func (r *Runner) Provider() *outdir.Provider {
	return r.provider
}

// Run executes one named check against a fresh store opened in its own
// prepared output folder.
func (r *Runner) Run(checkName string, workerID int) domain.CheckResult {
	engine := r.config.GetEngine()
	start := time.Now()

	result := domain.CheckResult{
		CheckName: checkName,
		Engine:    engine,
	}

	check, ok := lookup(checkName)
	if !ok {
		result.Error = fmt.Errorf("unknown check %q", checkName)
		result.Duration = time.Since(start)
		return result
	}

	dir, err := r.provider.Prepare(engine, check.Name)
	if err != nil {
		result.Error = fmt.Errorf("prepare output folder: %w", err)
		result.Duration = time.Since(start)
		return result
	}
	result.OutputDir = dir

	s, err := store.Open(engine, store.Config{BaseDir: dir})
	if err != nil {
		result.Error = fmt.Errorf("open store: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	env := &Env{
		Store:     s,
		Engine:    engine,
		OutputDir: dir,
		Reopen: func() (store.Store, error) {
			return store.Open(engine, store.Config{BaseDir: dir})
		},
	}
	env.Logf("worker %d: %s against %s in %s", workerID, check.Name, engine, dir)

	err = check.run(env)

	// Teardown mirrors the smoke lifecycle: flush and close whatever handle
	// the check left open.
	if env.Store != nil && env.Store.IsOpen() {
		if ferr := env.Store.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("flush on teardown: %w", ferr)
		}
		if cerr := env.Store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close on teardown: %w", cerr)
		}
	}

	result.Success = err == nil
	result.Output = env.log.String()
	result.Error = err
	result.Duration = time.Since(start)
	return result
}
