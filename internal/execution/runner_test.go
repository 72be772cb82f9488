package execution

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"fpt/internal/config"
	"fpt/internal/domain"
	"fpt/internal/platform"
	"fpt/internal/suite"
)

type recordedCall struct {
	name string
	args []string
	env  []string
}

type fakeExecutor struct {
	calls   []recordedCall
	respond func(name string, args []string) domain.CommandResult
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args []string, env []string) domain.CommandResult {
	f.calls = append(f.calls, recordedCall{name: name, args: args, env: env})
	if f.respond != nil {
		return f.respond(name, args)
	}
	return domain.CommandResult{Output: "ok"}
}

func newTestRunner(executor CommandExecutor) *Runner {
	cfg := &config.Config{FFmpegBin: "ffmpeg", OutputDir: "/out"}
	converter := platform.NewConverter(platform.Host{OS: "linux", Flavor: platform.FlavorNative}, nil)
	return NewRunner(cfg, executor, converter, ".so")
}

func TestRunner_BuildArgs(t *testing.T) {
	runner := newTestRunner(&fakeExecutor{})
	cases := suite.Builtin().Cases

	tests := []struct {
		name string
		c    domain.TestCase
		want []string
	}{
		{
			name: "blur",
			c:    cases[0],
			want: []string{
				"-hide_banner", "-y",
				"-f", "lavfi", "-i", "testsrc=duration=3:size=640x480:rate=30",
				"-vf", "oc_plugin=plugin=libblur_plugin.so:params=ksize=15",
				"/out/test_blur.mp4",
			},
		},
		{
			name: "avgframes",
			c:    cases[1],
			want: []string{
				"-hide_banner", "-y",
				"-f", "lavfi", "-i", "testsrc=duration=3:size=640x480:rate=30",
				"-vf", "oc_plugin=plugin=libavgframes_plugin.so:params=frames=5",
				"/out/test_avgframes.mp4",
			},
		},
		{
			name: "split",
			c:    cases[2],
			want: []string{
				"-hide_banner", "-y",
				"-f", "lavfi", "-i", "testsrc=duration=3:size=640x480:rate=30",
				"-filter_complex", "oc_plugin=plugin=libsplit_plugin.so:outputs=3:params=outputs=3[out0][out1][out2]",
				"-map", "[out0]", "/out/test_split_passthrough.mp4",
				"-map", "[out1]", "/out/test_split_gray.mp4",
				"-map", "[out2]", "/out/test_split_edges.mp4",
			},
		},
		{
			name: "blend",
			c:    cases[3],
			want: []string{
				"-hide_banner", "-y",
				"-f", "lavfi", "-i", "testsrc=duration=3:size=640x480:rate=30",
				"-f", "lavfi", "-i", "color=c=blue:duration=3:size=640x480:rate=30",
				"-filter_complex", "[0:v][1:v]oc_plugin=plugin=libblend_plugin.so:inputs=2:params=alpha=0.5",
				"/out/test_blend.mp4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runner.BuildArgs(tt.c)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildArgs() =\n  %v\nwant\n  %v", got, tt.want)
			}
		})
	}
}

func TestRunner_BuildArgsWindowsPaths(t *testing.T) {
	cfg := &config.Config{FFmpegBin: "ffmpeg.exe", OutputDir: `C:\out`}
	converter := platform.NewConverter(platform.Host{OS: "windows", Flavor: platform.FlavorMinGW}, nil)
	runner := NewRunner(cfg, &fakeExecutor{}, converter, ".dll")

	args := runner.BuildArgs(suite.Builtin().Cases[0])

	last := args[len(args)-1]
	if !strings.HasSuffix(last, "test_blur.mp4") || !strings.HasPrefix(last, "C:/out") {
		t.Errorf("unexpected output path argument: %s", last)
	}
	for _, arg := range args {
		if strings.ContainsRune(arg, '\\') {
			t.Errorf("argument contains backslash: %s", arg)
		}
	}
	if args[7] != "oc_plugin=plugin=libblur_plugin.dll:params=ksize=15" {
		t.Errorf("unexpected filter argument: %s", args[7])
	}
}

func TestRunner_Run(t *testing.T) {
	t.Run("pass", func(t *testing.T) {
		executor := &fakeExecutor{}
		runner := newTestRunner(executor)

		result := runner.Run(context.Background(), suite.Builtin().Cases[0])

		if result.Status != domain.StatusPassed {
			t.Errorf("expected status %s, got %s", domain.StatusPassed, result.Status)
		}
		if len(executor.calls) != 1 {
			t.Fatalf("expected 1 call, got %d", len(executor.calls))
		}
		call := executor.calls[0]
		if call.name != "ffmpeg" {
			t.Errorf("expected binary ffmpeg, got %s", call.name)
		}
		if !reflect.DeepEqual(call.env, []string{"AV_LOG_FORCE_NOCOLOR=1"}) {
			t.Errorf("unexpected env: %v", call.env)
		}
		if !strings.HasPrefix(result.Command, "ffmpeg -hide_banner -y -f lavfi") {
			t.Errorf("unexpected command line: %s", result.Command)
		}
	})

	t.Run("nonzero exit", func(t *testing.T) {
		executor := &fakeExecutor{
			respond: func(string, []string) domain.CommandResult {
				return domain.CommandResult{Output: "No such filter: 'oc_plugin'", ExitCode: 1}
			},
		}
		runner := newTestRunner(executor)

		result := runner.Run(context.Background(), suite.Builtin().Cases[0])

		if result.Status != domain.StatusFailed {
			t.Errorf("expected status %s, got %s", domain.StatusFailed, result.Status)
		}
		if result.ExitCode != 1 {
			t.Errorf("expected exit code 1, got %d", result.ExitCode)
		}
		if result.Output != "No such filter: 'oc_plugin'" {
			t.Errorf("unexpected output: %s", result.Output)
		}
	})

	t.Run("launch failure", func(t *testing.T) {
		launchErr := errors.New(`exec: "ffmpeg": executable file not found in $PATH`)
		executor := &fakeExecutor{
			respond: func(string, []string) domain.CommandResult {
				return domain.CommandResult{ExitCode: -1, Err: launchErr}
			},
		}
		runner := newTestRunner(executor)

		result := runner.Run(context.Background(), suite.Builtin().Cases[0])

		if result.Status != domain.StatusFailed {
			t.Errorf("expected status %s, got %s", domain.StatusFailed, result.Status)
		}
		if !errors.Is(result.Err, launchErr) {
			t.Errorf("expected launch error, got %v", result.Err)
		}
	})
}

func TestRunner_Probe(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		executor := &fakeExecutor{
			respond: func(string, []string) domain.CommandResult {
				return domain.CommandResult{Output: "ffmpeg version 6.1.1\n"}
			},
		}
		runner := newTestRunner(executor)

		out, err := runner.Probe(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "ffmpeg version 6.1.1") {
			t.Errorf("unexpected probe output: %q", out)
		}

		call := executor.calls[0]
		if !reflect.DeepEqual(call.args, []string{"-version"}) {
			t.Errorf("unexpected probe args: %v", call.args)
		}
	})

	t.Run("nonzero exit", func(t *testing.T) {
		executor := &fakeExecutor{
			respond: func(string, []string) domain.CommandResult {
				return domain.CommandResult{ExitCode: 1}
			},
		}
		runner := newTestRunner(executor)

		if _, err := runner.Probe(context.Background()); err == nil || !strings.Contains(err.Error(), "ffmpeg not found") {
			t.Errorf("expected probe failure, got %v", err)
		}
	})

	t.Run("launch failure", func(t *testing.T) {
		executor := &fakeExecutor{
			respond: func(string, []string) domain.CommandResult {
				return domain.CommandResult{ExitCode: -1, Err: errors.New("permission denied")}
			},
		}
		runner := newTestRunner(executor)

		if _, err := runner.Probe(context.Background()); err == nil || !strings.Contains(err.Error(), "permission denied") {
			t.Errorf("expected launch error, got %v", err)
		}
	})
}
