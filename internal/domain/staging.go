package domain

// StagingWarning records a dependency copy that failed.
type StagingWarning struct {
	Name   string
	Reason string
}

// StagingReport summarizes the best-effort copy of plugins and runtime
// dependencies next to the ffmpeg binary. An empty Dir means staging was
// skipped entirely (PATH-resolved binary or missing directory).
type StagingReport struct {
	Dir      string
	Copied   []string
	Warnings []StagingWarning
}
