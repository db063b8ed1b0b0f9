package runs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()

	// Two runs plus noise that must be skipped
	dirs := []string{
		"2024-01-02-03-04-05/bolt/open",
		"2024-01-02-03-04-05/bolt/put",
		"2024-03-04-05-06-07/bolt/open",
		"not-a-timestamp/bolt/open",
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	// A stray file at the root must be ignored
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	scanner := NewScanner()

	t.Run("lists runs newest first", func(t *testing.T) {
		runs, err := scanner.Scan(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(runs) != 2 {
			t.Fatalf("expected 2 runs, got %d", len(runs))
		}
		if runs[0].Timestamp != "2024-03-04-05-06-07" {
			t.Errorf("expected newest run first, got %s", runs[0].Timestamp)
		}
		if runs[1].Timestamp != "2024-01-02-03-04-05" {
			t.Errorf("expected oldest run last, got %s", runs[1].Timestamp)
		}
	})

	t.Run("lists suites and tests", func(t *testing.T) {
		runs, err := scanner.Scan(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		oldest := runs[1]
		if len(oldest.Suites) != 1 {
			t.Fatalf("expected 1 suite, got %d", len(oldest.Suites))
		}
		suite := oldest.Suites[0]
		if suite.Name != "bolt" {
			t.Errorf("expected suite bolt, got %s", suite.Name)
		}
		if len(suite.Tests) != 2 || suite.Tests[0] != "open" || suite.Tests[1] != "put" {
			t.Errorf("expected tests [open put], got %v", suite.Tests)
		}
	})

	t.Run("missing root means no runs", func(t *testing.T) {
		runs, err := scanner.Scan(filepath.Join(root, "does-not-exist"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(runs) != 0 {
			t.Errorf("expected no runs, got %d", len(runs))
		}
	})

	t.Run("root not a directory", func(t *testing.T) {
		if _, err := scanner.Scan(filepath.Join(root, "notes.txt")); err == nil {
			t.Error("expected error for non-directory root")
		}
	})
}
