package domain

import "time"

// RunRecord is the JSON-persisted form of one test result.
type RunRecord struct {
	Name            string  `json:"name"`
	Plugin          string  `json:"plugin"`
	Status          Status  `json:"status"`
	Artifact        string  `json:"artifact"`
	Command         string  `json:"command,omitempty"`
	ExitCode        int     `json:"exit_code"`
	Reason          string  `json:"reason,omitempty"`
	Output          string  `json:"output,omitempty"`
	DurationSeconds float64 `json:"duration_seconds"`
	Reviewed        bool    `json:"reviewed,omitempty"` // set from the viewer when a failure has been looked at
}

// RunMeta describes a completed run.
type RunMeta struct {
	Total           int     `json:"total"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	FFmpegVersion   string  `json:"ffmpeg_version"`
	DetectedOS      string  `json:"detected_os"`
	PluginExt       string  `json:"plugin_ext"`
	OutputDir       string  `json:"output_dir"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete stored form of a run (what view reads back).
type RunOutput struct {
	Meta    RunMeta     `json:"meta"`
	Results []RunRecord `json:"results"`
}

// NewRunMeta builds run metadata from results and run context.
func NewRunMeta(results []TestResult, duration time.Duration, ffmpegVersion, detectedOS, pluginExt, outputDir string) RunMeta {
	s := Summarize(results)
	return RunMeta{
		Total:           s.Total,
		Passed:          s.Passed,
		Failed:          s.Failed,
		Skipped:         s.Skipped,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		FFmpegVersion:   ffmpegVersion,
		DetectedOS:      detectedOS,
		PluginExt:       pluginExt,
		OutputDir:       outputDir,
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}

// NewRunRecord converts a test result to its persisted form.
func NewRunRecord(r TestResult) RunRecord {
	rec := RunRecord{
		Name:            r.Case.Name,
		Plugin:          r.Case.Plugin,
		Status:          r.Status,
		Artifact:        r.Artifact,
		Command:         r.Command,
		ExitCode:        r.ExitCode,
		Output:          r.Output,
		DurationSeconds: r.Duration.Seconds(),
	}
	if r.Err != nil {
		rec.Reason = r.Err.Error()
	}
	return rec
}
