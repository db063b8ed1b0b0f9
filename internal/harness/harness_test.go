package harness

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kvsmoke/internal/config"
	"kvsmoke/internal/domain"
	"kvsmoke/internal/outdir"
	"kvsmoke/internal/store"
)

// fakeStore implements the store contract in memory for harness tests.
type fakeStore struct {
	open    bool
	putErr  error
	values  map[string][]byte
}

func (f *fakeStore) Put(key, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	if !f.open {
		return errors.New("store is closed")
	}
	f.values[string(key)] = value
	return nil
}

func (f *fakeStore) Flush() error {
	if !f.open {
		return errors.New("store is closed")
	}
	return nil
}

func (f *fakeStore) Close() error {
	f.open = false
	return nil
}

func (f *fakeStore) IsOpen() bool {
	return f.open
}

// registerFakeEngine registers an engine whose stores fail puts with putErr.
func registerFakeEngine(name string, putErr error) {
	store.Register(name, func(cfg store.Config) (store.Store, error) {
		if _, err := os.Stat(cfg.BaseDir); err != nil {
			return nil, err
		}
		return &fakeStore{open: true, putErr: putErr, values: make(map[string][]byte)}, nil
	})
}

func testConfig(t *testing.T, engine string) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Engine = engine
	cfg.Flags.OutputRoot = t.TempDir()
	return cfg
}

func newTestRunner(t *testing.T, engine string) *Runner {
	t.Helper()
	cfg := testConfig(t, engine)
	provider := outdir.New(cfg.GetOutputRoot())
	return NewRunner(cfg, provider)
}

func TestChecks(t *testing.T) {
	all := Checks()
	if len(all) == 0 {
		t.Fatal("expected registered checks")
	}

	seen := make(map[string]bool)
	for _, check := range all {
		if check.Name == "" {
			t.Error("check with empty name")
		}
		if seen[check.Name] {
			t.Errorf("duplicate check name %s", check.Name)
		}
		seen[check.Name] = true
	}
}

func TestFilterByName(t *testing.T) {
	checks := []domain.Check{
		{Name: "open"},
		{Name: "put"},
		{Name: "put-overwrite"},
		{Name: "close"},
	}

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{"empty pattern keeps all", "", []string{"open", "put", "put-overwrite", "close"}},
		{"exact name", "open", []string{"open"}},
		{"prefix wildcard", "put*", []string{"put", "put-overwrite"}},
		{"contains wildcard", "*over*", []string{"put-overwrite"}},
		{"substring without wildcard", "lo", []string{"close"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterByName(checks, tt.pattern)
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d checks, got %d (%v)", len(tt.expected), len(result), result)
			}
			for i, check := range result {
				if check.Name != tt.expected[i] {
					t.Errorf("expected %s at %d, got %s", tt.expected[i], i, check.Name)
				}
			}
		})
	}
}

func TestRunner_Run(t *testing.T) {
	registerFakeEngine("fake", nil)
	runner := newTestRunner(t, "fake")

	t.Run("successful check", func(t *testing.T) {
		result := runner.Run("open", 1)
		if !result.Success {
			t.Fatalf("expected success, got error: %v", result.Error)
		}
		if result.CheckName != "open" {
			t.Errorf("expected check name open, got %s", result.CheckName)
		}
		if result.Engine != "fake" {
			t.Errorf("expected engine fake, got %s", result.Engine)
		}

		// The output folder must exist and follow root/timestamp/engine/check
		if _, err := os.Stat(result.OutputDir); err != nil {
			t.Errorf("expected output folder to exist: %v", err)
		}
		expected := filepath.Join(
			runner.Provider().Root(),
			runner.Provider().Timestamp().Format(outdir.TimestampFormat),
			"fake", "open",
		)
		if result.OutputDir != expected {
			t.Errorf("expected output folder %s, got %s", expected, result.OutputDir)
		}
	})

	t.Run("unknown check", func(t *testing.T) {
		result := runner.Run("no-such-check", 1)
		if result.Success {
			t.Error("expected failure for unknown check")
		}
		if result.Error == nil {
			t.Error("expected error for unknown check")
		}
	})

	t.Run("unknown engine", func(t *testing.T) {
		runner := newTestRunner(t, "missing-engine")
		result := runner.Run("open", 1)
		if result.Success {
			t.Error("expected failure for unknown engine")
		}
	})

	t.Run("failing put surfaces in result", func(t *testing.T) {
		registerFakeEngine("broken", errors.New("disk on fire"))
		runner := newTestRunner(t, "broken")
		result := runner.Run("put", 1)
		if result.Success {
			t.Error("expected failure when puts fail")
		}
		if result.Error == nil {
			t.Fatal("expected error when puts fail")
		}
	})
}

func TestPool_Execute(t *testing.T) {
	registerFakeEngine("fake", nil)
	cfg := testConfig(t, "fake")
	cfg.Workers = 2
	provider := outdir.New(cfg.GetOutputRoot())
	pool := NewPool(cfg, NewRunner(cfg, provider))

	var names []string
	for _, check := range Checks() {
		names = append(names, check.Name)
	}

	results, duration, err := pool.Execute(names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(names) {
		t.Fatalf("expected %d results, got %d", len(names), len(results))
	}
	if duration <= 0 {
		t.Error("expected positive duration")
	}

	for _, result := range results {
		if !result.Success {
			t.Errorf("check %s failed: %v", result.CheckName, result.Error)
		}
	}

	// All checks share one run timestamp folder
	runFolder := filepath.Join(cfg.GetOutputRoot(), provider.Timestamp().Format(outdir.TimestampFormat))
	entries, err := os.ReadDir(filepath.Join(runFolder, "fake"))
	if err != nil {
		t.Fatalf("expected suite folder: %v", err)
	}
	if len(entries) != len(names) {
		t.Errorf("expected %d check folders, got %d", len(names), len(entries))
	}
}

func TestPool_ExecuteEmpty(t *testing.T) {
	registerFakeEngine("fake", nil)
	cfg := testConfig(t, "fake")
	pool := NewPool(cfg, NewRunner(cfg, outdir.New(cfg.GetOutputRoot())))

	results, duration, err := pool.Execute(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil || duration != 0 {
		t.Error("expected no results for empty input")
	}
}

func TestPool_FailFast(t *testing.T) {
	registerFakeEngine("broken", errors.New("disk on fire"))
	cfg := testConfig(t, "broken")
	cfg.Workers = 1
	pool := NewPool(cfg, NewRunner(cfg, outdir.New(cfg.GetOutputRoot())))

	var names []string
	for _, check := range Checks() {
		names = append(names, check.Name)
	}

	results, _, err := pool.ExecuteWithOptions(names, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if len(results) >= len(names) {
		t.Errorf("expected fail-fast to stop early, got %d of %d results", len(results), len(names))
	}

	var sawFailure bool
	for _, result := range results {
		if !result.Success {
			sawFailure = true
		}
	}
	if !sawFailure {
		t.Error("expected a failed result")
	}
}

func TestEnv_Logf(t *testing.T) {
	env := &Env{}
	env.Logf("hello %s", "world")
	env.Logf("second line")
	expected := "hello world\nsecond line\n"
	if env.log.String() != expected {
		t.Errorf("expected %q, got %q", expected, env.log.String())
	}
}
