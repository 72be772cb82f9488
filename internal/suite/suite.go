package suite

import (
	"fmt"

	"fpt/internal/domain"
)

// Video parameters shared by every synthetic input source.
const (
	DefaultDuration = 3
	DefaultWidth    = 640
	DefaultHeight   = 480
	DefaultFPS      = 30
)

// Suite is a named set of plugin test cases sharing the same synthetic
// video parameters.
type Suite struct {
	Name     string `yaml:"name,omitempty"`
	Duration int    `yaml:"duration,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	Height   int    `yaml:"height,omitempty"`
	FPS      int    `yaml:"fps,omitempty"`
	// Dependencies are shared library files staged next to the ffmpeg
	// binary alongside the plugins themselves
	Dependencies []string          `yaml:"dependencies,omitempty"`
	Cases        []domain.TestCase `yaml:"tests"`
}

// DefaultDependencies returns the shared libraries the OpenCV plugins need
// next to the ffmpeg binary on Windows.
func DefaultDependencies() []string {
	return []string{
		"opencv_core4.dll",
		"opencv_imgproc4.dll",
		"zlib1.dll",
	}
}

// TestSrc returns the lavfi testsrc spec for the suite's video parameters.
func (s *Suite) TestSrc() string {
	return fmt.Sprintf("testsrc=duration=%d:size=%dx%d:rate=%d", s.Duration, s.Width, s.Height, s.FPS)
}

// ColorSrc returns a solid-color lavfi spec matching the suite's video parameters.
func (s *Suite) ColorSrc(color string) string {
	return fmt.Sprintf("color=c=%s:duration=%d:size=%dx%d:rate=%d", color, s.Duration, s.Width, s.Height, s.FPS)
}

func (s *Suite) applyDefaults() {
	if s.Duration == 0 {
		s.Duration = DefaultDuration
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.FPS == 0 {
		s.FPS = DefaultFPS
	}
	// A declared empty list stays empty; only an omitted key defaults.
	if s.Dependencies == nil {
		s.Dependencies = DefaultDependencies()
	}
	for i := range s.Cases {
		if len(s.Cases[i].Inputs) == 0 {
			s.Cases[i].Inputs = []string{s.TestSrc()}
		}
	}
}

// Builtin returns the standard suite covering the four OpenCV sample
// plugins: blur, average frames, split, and blend.
func Builtin() *Suite {
	s := &Suite{
		Name:         "opencv-plugins",
		Duration:     DefaultDuration,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		FPS:          DefaultFPS,
		Dependencies: DefaultDependencies(),
	}
	s.Cases = []domain.TestCase{
		{
			Name:    "Blur Plugin",
			Plugin:  "blur_plugin",
			Inputs:  []string{s.TestSrc()},
			Filter:  "oc_plugin=plugin={plugin}:params=ksize=15",
			Outputs: []domain.OutputFile{{Name: "test_blur.mp4"}},
		},
		{
			Name:    "Average Frames Plugin",
			Plugin:  "avgframes_plugin",
			Inputs:  []string{s.TestSrc()},
			Filter:  "oc_plugin=plugin={plugin}:params=frames=5",
			Outputs: []domain.OutputFile{{Name: "test_avgframes.mp4"}},
		},
		{
			Name:    "Split Plugin",
			Plugin:  "split_plugin",
			Inputs:  []string{s.TestSrc()},
			Complex: true,
			Filter:  "oc_plugin=plugin={plugin}:outputs=3:params=outputs=3[out0][out1][out2]",
			Outputs: []domain.OutputFile{
				{Map: "[out0]", Name: "test_split_passthrough.mp4", Note: "passthrough"},
				{Map: "[out1]", Name: "test_split_gray.mp4", Note: "grayscale"},
				{Map: "[out2]", Name: "test_split_edges.mp4", Note: "edges"},
			},
		},
		{
			Name:    "Blend Plugin",
			Plugin:  "blend_plugin",
			Inputs:  []string{s.TestSrc(), s.ColorSrc("blue")},
			Complex: true,
			Filter:  "[0:v][1:v]oc_plugin=plugin={plugin}:inputs=2:params=alpha=0.5",
			Outputs: []domain.OutputFile{{Name: "test_blend.mp4"}},
		},
	}
	return s
}
