package domain

// Run describes one past run folder under the output root
type Run struct {
	Timestamp string  // Folder name, e.g. 2024-01-02-03-04-05
	Path      string  // Full path to the run folder
	Suites    []Suite // Suites found under the run folder
}

// Suite groups the test folders of one suite within a run
type Suite struct {
	Name  string   // Suite folder name
	Tests []string // Test folder names under the suite
}
