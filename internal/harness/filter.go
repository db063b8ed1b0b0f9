package harness

import (
	"path"
	"strings"

	"kvsmoke/internal/domain"
)

// FilterByName filters checks by name pattern using wildcard matching.
// Supports patterns like "put*" or "*close*"; a pattern without wildcards
// is treated as a substring match.
func FilterByName(checks []domain.Check, pattern string) []domain.Check {
	if pattern == "" {
		return checks
	}

	var filtered []domain.Check

	for _, check := range checks {
		// Try to match using path.Match (supports * and ? wildcards)
		matched, err := path.Match(pattern, check.Name)
		if err == nil && matched {
			filtered = append(filtered, check)
			continue
		}

		// If the pattern contains wildcards but path.Match didn't match,
		// fall back to a substring match on the non-wildcard parts, so
		// patterns like "*put*" behave as expected.
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allMatch := true
			hasNonEmpty := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmpty = true
				if !strings.Contains(check.Name, part) {
					allMatch = false
					break
				}
			}
			if allMatch && hasNonEmpty {
				filtered = append(filtered, check)
			}
			continue
		}

		// No wildcards: plain substring match
		if !strings.Contains(pattern, "?") && strings.Contains(check.Name, pattern) {
			filtered = append(filtered, check)
		}
	}

	return filtered
}
