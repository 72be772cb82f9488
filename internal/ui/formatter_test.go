package ui

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"small file", 512, "0.5K"},
		{"kilobytes", 153600, "150.0K"},
		{"just under a mebibyte", 1048575, "1024.0K"},
		{"exactly a mebibyte", 1048576, "1.0M"},
		{"megabytes", 5242880, "5.0M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSize(tt.bytes); got != tt.want {
				t.Errorf("formatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
