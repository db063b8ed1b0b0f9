package domain

// Check identifies a single lifecycle smoke check
type Check struct {
	Name        string // Short name, used as the output folder name
	Description string // One-line summary shown by the list command
}
