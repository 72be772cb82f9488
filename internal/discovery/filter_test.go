package discovery

import (
	"testing"

	"fpt/internal/domain"
)

func TestFilter_FilterCases(t *testing.T) {
	cases := []domain.TestCase{
		{Name: "Blur Plugin", Plugin: "blur_plugin"},
		{Name: "Average Frames Plugin", Plugin: "avgframes_plugin"},
		{Name: "Split Plugin", Plugin: "split_plugin"},
		{Name: "Blend Plugin", Plugin: "blend_plugin"},
	}

	filter := NewFilter()

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "empty pattern keeps everything",
			pattern: "",
			want:    []string{"Blur Plugin", "Average Frames Plugin", "Split Plugin", "Blend Plugin"},
		},
		{
			name:    "substring of display name",
			pattern: "blur",
			want:    []string{"Blur Plugin"},
		},
		{
			name:    "substring of plugin name",
			pattern: "avgframes",
			want:    []string{"Average Frames Plugin"},
		},
		{
			name:    "shared prefix",
			pattern: "bl",
			want:    []string{"Blur Plugin", "Blend Plugin"},
		},
		{
			name:    "wildcard pattern",
			pattern: "*split*",
			want:    []string{"Split Plugin"},
		},
		{
			name:    "wildcard on plugin name",
			pattern: "*_plugin",
			want:    []string{"Blur Plugin", "Average Frames Plugin", "Split Plugin", "Blend Plugin"},
		},
		{
			name:    "no match",
			pattern: "sharpen",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.FilterCases(cases, tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d cases, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i].Name != tt.want[i] {
					t.Errorf("expected %s at %d, got %s", tt.want[i], i, got[i].Name)
				}
			}
		})
	}
}
