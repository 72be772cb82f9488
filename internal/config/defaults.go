package config

const (
	// DefaultFFmpegBin is the ffmpeg binary used when no override is given
	DefaultFFmpegBin = "ffmpeg"
	// DefaultPluginDir is the default plugin build directory
	DefaultPluginDir = "./build/src"
	// DefaultOutputDir is the default directory for produced media
	DefaultOutputDir = "./build/test_output"
	// DefaultResultsFile is the results JSON file name
	DefaultResultsFile = "test-results.json"
)

// Environment variables consulted when the matching flag is absent.
const (
	EnvFFmpegBin = "FFMPEG_BIN"
	EnvPluginDir = "PLUGIN_DIR"
	EnvOutputDir = "OUTPUT_DIR"
)
