package parser

import (
	"fmt"
	"regexp"
	"strings"

	"fpt/internal/domain"
)

// snippetLines is how much of the log tail a failure detail keeps.
const snippetLines = 12

// FFmpegParser extracts version strings and failure details from ffmpeg
// output
type FFmpegParser struct{}

// NewFFmpegParser creates a new FFmpegParser
func NewFFmpegParser() *FFmpegParser {
	return &FFmpegParser{}
}

var (
	shortVersionRe = regexp.MustCompile(`ffmpeg version (\S+)`)
	errorLineRe    = regexp.MustCompile(`(?i)(no such filter|failed to|cannot |could not|unable to|invalid argument|error|not found)`)
)

// ParseVersion returns the first line of `ffmpeg -version` output, or
// "Unknown" when there is none.
func (p *FFmpegParser) ParseVersion(output string) string {
	line, _, _ := strings.Cut(output, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "Unknown"
	}
	return line
}

// ParseShortVersion returns just the version token, e.g. "6.1.1".
func (p *FFmpegParser) ParseShortVersion(output string) string {
	m := shortVersionRe.FindStringSubmatch(output)
	if len(m) < 2 {
		return "Unknown"
	}
	return m[1]
}

// ParseFailure extracts a short diagnostic from a failed test: the first
// line matching a known ffmpeg error pattern, plus the tail of the log.
// ffmpeg reports the root cause before the generic filter-graph errors, so
// the first match is the interesting one.
func (p *FFmpegParser) ParseFailure(result domain.TestResult) domain.FailureDetail {
	detail := domain.FailureDetail{Plugin: result.Case.Plugin}

	lines := splitLines(result.Output)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if errorLineRe.MatchString(trimmed) {
			detail.Message = trimmed
			break
		}
	}

	if detail.Message == "" {
		switch {
		case result.Err != nil:
			detail.Message = result.Err.Error()
		case result.ExitCode != 0:
			detail.Message = fmt.Sprintf("ffmpeg exited with code %d", result.ExitCode)
		}
	}

	start := len(lines) - snippetLines
	if start < 0 {
		start = 0
	}
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		detail.Snippet = append(detail.Snippet, line)
	}

	return detail
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
