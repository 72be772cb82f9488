package cli

import "fpt/internal/config"

// Flags holds command-line flags
type Flags struct {
	FFmpegBin string
	PluginDir string
	OutputDir string
	SuiteFile string
	Only      string
	Verbose   bool
	View      bool
	Outputs   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		FFmpegBin: f.FFmpegBin,
		PluginDir: f.PluginDir,
		OutputDir: f.OutputDir,
		SuiteFile: f.SuiteFile,
		Only:      f.Only,
		Verbose:   f.Verbose,
		View:      f.View,
		Outputs:   f.Outputs,
	}
}
