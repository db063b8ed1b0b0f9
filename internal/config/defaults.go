package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputRoot is the default root folder for test output
	DefaultOutputRoot = "../test-output"
	// DefaultEngine is the default store engine to smoke-test
	DefaultEngine = "bolt"
	// DefaultWorkers is the default number of parallel workers
	DefaultWorkers = 4
	// DefaultResultsFile is the default results JSON file name
	DefaultResultsFile = "smoke-results.json"
	// DefaultResultsDir is the default results directory
	DefaultResultsDir = "storage"
)
