package suite

import (
	"strings"
	"testing"
)

func TestBuiltin(t *testing.T) {
	s := Builtin()

	if len(s.Cases) != 4 {
		t.Fatalf("expected 4 cases, got %d", len(s.Cases))
	}

	wantNames := []string{"Blur Plugin", "Average Frames Plugin", "Split Plugin", "Blend Plugin"}
	for i, want := range wantNames {
		if s.Cases[i].Name != want {
			t.Errorf("case %d: expected name %q, got %q", i, want, s.Cases[i].Name)
		}
	}

	for _, c := range s.Cases {
		if c.Plugin == "" {
			t.Errorf("case %q has no plugin", c.Name)
		}
		if !strings.Contains(c.Filter, "{plugin}") {
			t.Errorf("case %q filter has no plugin placeholder: %s", c.Name, c.Filter)
		}
		if len(c.Inputs) == 0 {
			t.Errorf("case %q has no inputs", c.Name)
		}
		if len(c.Outputs) == 0 {
			t.Errorf("case %q has no outputs", c.Name)
		}
	}
}

func TestBuiltin_Split(t *testing.T) {
	s := Builtin()
	split := s.Cases[2]

	if !split.Complex {
		t.Error("split case should use -filter_complex")
	}
	if len(split.Outputs) != 3 {
		t.Fatalf("expected 3 outputs, got %d", len(split.Outputs))
	}

	wantMaps := []string{"[out0]", "[out1]", "[out2]"}
	wantFiles := []string{"test_split_passthrough.mp4", "test_split_gray.mp4", "test_split_edges.mp4"}
	for i, out := range split.Outputs {
		if out.Map != wantMaps[i] {
			t.Errorf("output %d: expected map %q, got %q", i, wantMaps[i], out.Map)
		}
		if out.Name != wantFiles[i] {
			t.Errorf("output %d: expected file %q, got %q", i, wantFiles[i], out.Name)
		}
	}
}

func TestBuiltin_Blend(t *testing.T) {
	s := Builtin()
	blend := s.Cases[3]

	if !blend.Complex {
		t.Error("blend case should use -filter_complex")
	}
	if len(blend.Inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(blend.Inputs))
	}
	if blend.Inputs[0] != "testsrc=duration=3:size=640x480:rate=30" {
		t.Errorf("unexpected first input: %s", blend.Inputs[0])
	}
	if blend.Inputs[1] != "color=c=blue:duration=3:size=640x480:rate=30" {
		t.Errorf("unexpected second input: %s", blend.Inputs[1])
	}
}

func TestSuite_TestSrc(t *testing.T) {
	s := &Suite{Duration: 3, Width: 640, Height: 480, FPS: 30}

	if got := s.TestSrc(); got != "testsrc=duration=3:size=640x480:rate=30" {
		t.Errorf("TestSrc() = %q", got)
	}
}

func TestSuite_ColorSrc(t *testing.T) {
	s := &Suite{Duration: 5, Width: 320, Height: 240, FPS: 25}

	if got := s.ColorSrc("blue"); got != "color=c=blue:duration=5:size=320x240:rate=25" {
		t.Errorf("ColorSrc() = %q", got)
	}
}
