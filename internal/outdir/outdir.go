package outdir

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
)

// TimestampFormat is the layout for run timestamps in folder names.
// Seconds are always included so folder names sort lexicographically.
const TimestampFormat = "2006-01-02-15-04-05"

// DefaultRoot is the default root folder for test output.
const DefaultRoot = "../test-output"

// Provider derives a unique output folder per (suite, test) pair and makes
// sure the folder exists on disk before returning it. All folders from one
// provider share a single run timestamp captured at construction, so one
// run's output is grouped under a common sortable label. Folders are never
// deleted; output is kept for manual inspection after the run.
//
// Suite and test names are used as folder names verbatim. Callers must
// supply path-safe names; no character validation is performed.
type Provider struct {
	root      string
	timestamp time.Time
	logOnly   bool

	mu        sync.Mutex
	suiteName string
	testName  string
	path      string
}

// New creates a Provider rooted at the given folder, capturing the current
// time as the run timestamp. An empty root falls back to DefaultRoot.
func New(root string) *Provider {
	return NewAt(root, time.Now())
}

// NewAt creates a Provider with an explicit run timestamp. Used by callers
// that need deterministic folder names, e.g. tests.
func NewAt(root string, timestamp time.Time) *Provider {
	if root == "" {
		root = DefaultRoot
	}
	return &Provider{
		root:      root,
		timestamp: timestamp,
	}
}

// SetLogOnly switches folder-creation failures from being returned as
// errors to being logged and swallowed. The original harness behavior was
// log-and-continue; that leaves the caller with a path that may not exist,
// so it is opt-in here.
func (p *Provider) SetLogOnly(logOnly bool) {
	p.logOnly = logOnly
}

// Prepare computes root/timestamp/suiteName/testName, creates the folder
// hierarchy if missing and returns the leaf path. Calling it twice with the
// same names returns the same path and does not fail.
func (p *Provider) Prepare(suiteName, testName string) (string, error) {
	if suiteName == "" {
		return "", fmt.Errorf("suite name must not be empty")
	}
	if testName == "" {
		return "", fmt.Errorf("test name must not be empty")
	}

	dir := filepath.Join(p.root, p.timestamp.Format(TimestampFormat), suiteName, testName)

	p.mu.Lock()
	p.suiteName = suiteName
	p.testName = testName
	p.path = dir
	p.mu.Unlock()

	if err := p.ensure(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// Subfolder creates one folder under an already-prepared path and returns it.
func (p *Provider) Subfolder(base, name string) (string, error) {
	return p.Subfolders(base, name)
}

// Subfolders creates a nested folder hierarchy under an already-prepared
// path and returns the leaf. Subfolders(p, "a", "b") is equivalent to
// Subfolder(Subfolder(p, "a"), "b").
func (p *Provider) Subfolders(base string, names ...string) (string, error) {
	dir := base
	for _, name := range names {
		dir = filepath.Join(dir, name)
	}
	if err := p.ensure(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// ensure creates dir and any missing parents. Creation is idempotent;
// concurrent calls for the same dir are safe.
func (p *Provider) ensure(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		if p.logOnly {
			color.Red("Error creating output folder %s: %v", dir, err)
			return nil
		}
		return fmt.Errorf("create output folder %s: %w", dir, err)
	}
	return nil
}

// Root returns the configured root folder.
func (p *Provider) Root() string {
	return p.root
}

// Timestamp returns the run timestamp captured at construction.
func (p *Provider) Timestamp() time.Time {
	return p.timestamp
}

// SuiteName returns the suite name from the most recent Prepare call.
func (p *Provider) SuiteName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.suiteName
}

// TestName returns the test name from the most recent Prepare call.
func (p *Provider) TestName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.testName
}

// Path returns the leaf path from the most recent Prepare call.
func (p *Provider) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}
