package domain

import "time"

// CheckResult represents the result of executing a single smoke check
type CheckResult struct {
	CheckName string        // Name of the check that was executed
	Engine    string        // Engine the check ran against
	OutputDir string        // Folder prepared for the check's output
	Success   bool          // Whether the check passed
	Output    string        // Free-form output captured from the check
	Error     error         // Error if execution failed
	Duration  time.Duration // Time taken to execute
}

// RunMeta contains metadata about a smoke run
type RunMeta struct {
	TotalChecks     int     `json:"total_checks"`
	FailedChecks    int     `json:"failed_checks"`
	PassedChecks    int     `json:"passed_checks"`
	Engine          string  `json:"engine"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
	RunFolder       string  `json:"run_folder"`
}

// RunOutput is the complete output structure for a smoke run
type RunOutput struct {
	Meta    RunMeta        `json:"meta"`
	Details []CheckFailure `json:"details"`
}
