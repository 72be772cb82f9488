package discovery

import (
	"path/filepath"
	"strings"

	"fpt/internal/domain"
)

// Filter selects test cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterCases selects cases whose display name or plugin name matches the
// pattern. Wildcard patterns use filepath.Match semantics; plain strings
// match as case-insensitive substrings.
func (f *Filter) FilterCases(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, c := range cases {
		if matches(c.Name, pattern) || matches(c.Plugin, pattern) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

func matches(value, pattern string) bool {
	value = strings.ToLower(value)
	pattern = strings.ToLower(pattern)

	if matched, err := filepath.Match(pattern, value); err == nil && matched {
		return true
	}

	// Patterns like "*split*" that filepath.Match rejected still match
	// when every literal part appears in the value.
	if strings.Contains(pattern, "*") {
		anyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			anyPart = true
			if !strings.Contains(value, part) {
				return false
			}
		}
		return anyPart
	}

	if strings.Contains(pattern, "?") {
		return false
	}

	return strings.Contains(value, pattern)
}
