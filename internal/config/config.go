package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness
type Config struct {
	// FFmpegBin is the ffmpeg binary to exercise plugins with
	FFmpegBin string
	// PluginDir is the directory holding built plugin libraries
	PluginDir string
	// OutputDir receives produced media and the results JSON
	OutputDir string
	// SuiteFile optionally replaces the built-in test suite
	SuiteFile string
	// ResultsFile is the results JSON file name under OutputDir
	ResultsFile string
	// Only restricts the run to tests whose name contains the value
	Only string
	// Verbose prints full ffmpeg output for every test
	Verbose bool

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults. A .env file in the working
// directory is loaded into the environment first; variables already set
// keep their values.
func New() *Config {
	_ = godotenv.Load()
	return &Config{
		FFmpegBin:   DefaultFFmpegBin,
		PluginDir:   DefaultPluginDir,
		OutputDir:   DefaultOutputDir,
		ResultsFile: DefaultResultsFile,
	}
}

// Load creates a config and resolves each setting once: flag first, then
// environment variable, then default.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	cfg.FFmpegBin = resolve(flags.FFmpegBin, EnvFFmpegBin, DefaultFFmpegBin)
	cfg.PluginDir = resolve(flags.PluginDir, EnvPluginDir, DefaultPluginDir)
	cfg.OutputDir = resolve(flags.OutputDir, EnvOutputDir, DefaultOutputDir)
	cfg.SuiteFile = flags.SuiteFile
	cfg.Only = flags.Only
	cfg.Verbose = flags.Verbose

	return cfg
}

func resolve(flag, envKey, def string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}

// ResolvePluginDir resolves the plugin directory to an absolute path. A
// relative directory missing under the working directory is retried
// relative to the executable, which covers invoking the harness from
// outside the build tree.
func (c *Config) ResolvePluginDir(exeDir string) (string, error) {
	dir := c.PluginDir
	if !isDir(dir) && !filepath.IsAbs(dir) && exeDir != "" {
		if alt := filepath.Join(exeDir, dir); isDir(alt) {
			dir = alt
		}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve plugin dir: %w", err)
	}
	if !isDir(abs) {
		return "", fmt.Errorf("plugin directory not found: %s (build the plugins first or set %s)", abs, EnvPluginDir)
	}
	return abs, nil
}

// ResultsPath returns the absolute path of the results JSON file. run and
// view resolve it the same way regardless of the working directory.
func (c *Config) ResultsPath() string {
	name := c.ResultsFile
	if name == "" {
		name = DefaultResultsFile
	}
	p := filepath.Join(c.OutputDir, name)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// OutputFilePath returns the path of a produced media file under the output directory
func (c *Config) OutputFilePath(name string) string {
	return filepath.Join(c.OutputDir, name)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
