package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"fpt/internal/domain"
)

const versionOutput = `ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg team
built with gcc 13.2.0 (GCC)
configuration: --enable-gpl --enable-shared
libavutil      58. 29.100 / 58. 29.100`

func TestFFmpegParser_ParseVersion(t *testing.T) {
	p := NewFFmpegParser()

	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"full output", versionOutput, "ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg team"},
		{"windows line endings", "ffmpeg version 7.0\r\nbuilt with msvc\r\n", "ffmpeg version 7.0"},
		{"empty output", "", "Unknown"},
		{"blank output", "\n\n", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ParseVersion(tt.output); got != tt.want {
				t.Errorf("ParseVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFFmpegParser_ParseShortVersion(t *testing.T) {
	p := NewFFmpegParser()

	if got := p.ParseShortVersion(versionOutput); got != "6.1.1" {
		t.Errorf("ParseShortVersion() = %q, want %q", got, "6.1.1")
	}
	if got := p.ParseShortVersion("not a version banner"); got != "Unknown" {
		t.Errorf("ParseShortVersion() = %q, want %q", got, "Unknown")
	}
}

func TestFFmpegParser_ParseFailure(t *testing.T) {
	p := NewFFmpegParser()

	t.Run("missing filter", func(t *testing.T) {
		output := strings.Join([]string{
			"Input #0, lavfi, from 'testsrc=duration=3:size=640x480:rate=30':",
			"  Duration: N/A, start: 0.000000, bitrate: N/A",
			"  Stream #0:0: Video: wrapped_avframe, rgb24, 640x480",
			"[AVFilterGraph @ 0x5561] No such filter: 'oc_plugin'",
			"Filter chain setup aborted",
		}, "\n")
		result := domain.TestResult{
			Case:     domain.TestCase{Plugin: "blur_plugin"},
			Output:   output,
			ExitCode: 1,
		}

		detail := p.ParseFailure(result)

		if detail.Plugin != "blur_plugin" {
			t.Errorf("unexpected plugin: %s", detail.Plugin)
		}
		if want := "[AVFilterGraph @ 0x5561] No such filter: 'oc_plugin'"; detail.Message != want {
			t.Errorf("unexpected message: %q", detail.Message)
		}
	})

	t.Run("first matching line wins", func(t *testing.T) {
		output := strings.Join([]string{
			"[Parsed_oc_plugin_0 @ 0x55] Cannot load libblur_plugin.so",
			"[Parsed_oc_plugin_0 @ 0x55] Invalid argument in filter setup",
			"Filter graph rejected",
		}, "\n")
		result := domain.TestResult{Output: output, ExitCode: 1}

		detail := p.ParseFailure(result)
		if want := "[Parsed_oc_plugin_0 @ 0x55] Cannot load libblur_plugin.so"; detail.Message != want {
			t.Errorf("unexpected message: %q", detail.Message)
		}
	})

	t.Run("launch failure", func(t *testing.T) {
		result := domain.TestResult{
			Err:      errors.New(`exec: "ffmpeg": executable file not found in $PATH`),
			ExitCode: -1,
		}

		detail := p.ParseFailure(result)
		if !strings.Contains(detail.Message, "executable file not found") {
			t.Errorf("unexpected message: %q", detail.Message)
		}
		if detail.Snippet != nil {
			t.Errorf("expected no snippet, got %v", detail.Snippet)
		}
	})

	t.Run("exit code fallback", func(t *testing.T) {
		result := domain.TestResult{
			Output:   "frame=   90 fps=0.0 q=28.0 size=     256kB time=00:00:02.90",
			ExitCode: 137,
		}

		detail := p.ParseFailure(result)
		if want := "ffmpeg exited with code 137"; detail.Message != want {
			t.Errorf("unexpected message: %q", detail.Message)
		}
	})

	t.Run("snippet keeps the tail", func(t *testing.T) {
		var lines []string
		for i := 1; i <= 20; i++ {
			lines = append(lines, fmt.Sprintf("progress line %d", i))
		}
		result := domain.TestResult{Output: strings.Join(lines, "\n"), ExitCode: 1}

		detail := p.ParseFailure(result)
		if len(detail.Snippet) != 12 {
			t.Fatalf("expected 12 snippet lines, got %d", len(detail.Snippet))
		}
		if detail.Snippet[0] != "progress line 9" {
			t.Errorf("unexpected first snippet line: %q", detail.Snippet[0])
		}
		if detail.Snippet[11] != "progress line 20" {
			t.Errorf("unexpected last snippet line: %q", detail.Snippet[11])
		}
	})
}
