package cli

import "kvsmoke/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:      f.Workers,
		Engine:       f.Engine,
		NameFilter:   f.NameFilter,
		FailFast:     f.FailFast,
		LogOnly:      f.LogOnly,
		OutputRoot:   f.OutputRoot,
		ViewFailures: f.ViewFailures,
	}
}
