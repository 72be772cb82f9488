package domain

import "strings"

// TestCase describes one plugin test: the synthetic inputs, the filter graph
// to run, and the media files it should produce.
type TestCase struct {
	// Name is the display name, e.g. "Blur Plugin"
	Name string `yaml:"name"`
	// Plugin is the artifact base name, e.g. "blur_plugin"
	Plugin string `yaml:"plugin"`
	// Inputs are lavfi source specs, one per input stream
	Inputs []string `yaml:"inputs,omitempty"`
	// Complex selects -filter_complex instead of -vf
	Complex bool `yaml:"complex,omitempty"`
	// Filter is the filter template; {plugin} expands to the artifact file name
	Filter string `yaml:"filter"`
	// Outputs are the declared output files, in mapping order
	Outputs []OutputFile `yaml:"outputs"`
}

// OutputFile is one declared output of a test case.
type OutputFile struct {
	// Map is a -map label such as "[out0]"; empty for the default mapping
	Map string `yaml:"map,omitempty"`
	// Name is the file name under the output directory
	Name string `yaml:"name"`
	// Note is a short annotation shown in the pass listing
	Note string `yaml:"note,omitempty"`
}

// ArtifactFile returns the plugin's library file name for the given extension.
func (c TestCase) ArtifactFile(ext string) string {
	return "lib" + c.Plugin + ext
}

// RenderFilter substitutes the plugin file name into the filter template.
func (c TestCase) RenderFilter(pluginFile string) string {
	return strings.ReplaceAll(c.Filter, "{plugin}", pluginFile)
}
