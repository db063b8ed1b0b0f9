package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputRoot  string
	ResultsFile string
	ResultsDir  string

	// Execution settings
	Engine  string
	Workers int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Workers      int
	Engine       string
	NameFilter   string
	FailFast     bool
	LogOnly      bool
	OutputRoot   string
	ViewFailures bool
}

// New creates a new Config with defaults, applying KVSMOKE_* environment
// overrides. A .env file in the project directory is loaded if present.
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		OutputRoot:  DefaultOutputRoot,
		ResultsFile: DefaultResultsFile,
		ResultsDir:  DefaultResultsDir,
		Engine:      DefaultEngine,
		Workers:     DefaultWorkers,
		Flags:       Flags{Workers: DefaultWorkers},
	}
	cfg.applyEnv()
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	// Apply flag overrides
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}
	if flags.Engine != "" {
		cfg.Engine = flags.Engine
	}

	return cfg
}

// applyEnv loads .env from the project directory and applies KVSMOKE_*
// overrides on top of the defaults.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if root := os.Getenv("KVSMOKE_OUTPUT_ROOT"); root != "" {
		c.OutputRoot = root
	}
	if engine := os.Getenv("KVSMOKE_ENGINE"); engine != "" {
		c.Engine = engine
	}
}

// GetOutputRoot returns the output root, using the flag if provided. A
// relative root is resolved against the project path.
func (c *Config) GetOutputRoot() string {
	root := c.OutputRoot
	if c.Flags.OutputRoot != "" {
		root = c.Flags.OutputRoot
	}
	if filepath.IsAbs(root) {
		return root
	}
	return filepath.Join(c.ProjectPath, root)
}

// GetEngine returns the engine name, using the flag if provided
func (c *Config) GetEngine() string {
	if c.Flags.Engine != "" {
		return c.Flags.Engine
	}
	return c.Engine
}

// GetResultsPath returns the full path to the results JSON file (under the
// project so run and failures use the same file).
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetResultsPath() string {
	p := filepath.Join(c.ProjectPath, c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
