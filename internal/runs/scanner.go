package runs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"kvsmoke/internal/domain"
	"kvsmoke/internal/outdir"
)

// Scanner lists past run folders under the output root
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan finds run folders under the given root, newest first. A run folder is
// a direct child whose name parses as a run timestamp; anything else is
// skipped. A missing root means no runs have happened yet.
func (s *Scanner) Scan(root string) ([]domain.Run, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read output root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output root is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read output root %s: %w", root, err)
	}

	var found []domain.Run
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := time.Parse(outdir.TimestampFormat, entry.Name()); err != nil {
			continue
		}

		run := domain.Run{
			Timestamp: entry.Name(),
			Path:      filepath.Join(root, entry.Name()),
		}
		run.Suites, err = s.scanSuites(run.Path)
		if err != nil {
			return nil, err
		}
		found = append(found, run)
	}

	// Timestamp names sort lexicographically; newest first
	sort.Slice(found, func(i, j int) bool {
		return found[i].Timestamp > found[j].Timestamp
	})

	return found, nil
}

// scanSuites lists the suite folders of one run and their test folders.
func (s *Scanner) scanSuites(runPath string) ([]domain.Suite, error) {
	entries, err := os.ReadDir(runPath)
	if err != nil {
		return nil, fmt.Errorf("read run folder %s: %w", runPath, err)
	}

	var suites []domain.Suite
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		suite := domain.Suite{Name: entry.Name()}

		tests, err := os.ReadDir(filepath.Join(runPath, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read suite folder %s: %w", entry.Name(), err)
		}
		for _, test := range tests {
			if test.IsDir() {
				suite.Tests = append(suite.Tests, test.Name())
			}
		}
		sort.Strings(suite.Tests)
		suites = append(suites, suite)
	}

	sort.Slice(suites, func(i, j int) bool {
		return suites[i].Name < suites[j].Name
	})
	return suites, nil
}
