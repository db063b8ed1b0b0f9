package domain

// CheckFailure represents a failed smoke check
type CheckFailure struct {
	CheckName string `json:"check_name"`
	Engine    string `json:"engine"`
	OutputDir string `json:"output_dir"`
	Output    string `json:"output"`
	Message   string `json:"message"`
	Resolved  bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
