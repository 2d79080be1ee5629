package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/observability"
)

const (
	pathGraph = "3\n0,1,0\n1,0,1\n0,1,0\n"
	bfsJSON   = `{"algo":"BFS","n":3,"source":0,"order":[0,1,2],"edges":[[0,1],[1,2]]}`
)

// execute runs the CLI with args in an isolated config home.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := map[string]bool{"draw": false, "run": false, "tree": false, "serve": false, "config": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing %s command", name)
		}
	}
	for _, flag := range []string{"config", "solver", "interval", "verbose"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing --%s flag", flag)
		}
	}
}

func TestDrawCommand(t *testing.T) {
	input := writeTemp(t, "city.txt", "2\n0 10 5\n4 8 9\n")
	out := filepath.Join(t.TempDir(), "city.svg")

	if _, err := execute(t, "draw", "skyline", input, "-o", out); err != nil {
		t.Fatalf("draw: %v", err)
	}
	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(svg), `class="building"`); got != 2 {
		t.Errorf("%d buildings drawn, want 2", got)
	}
}

func TestDrawCommandErrors(t *testing.T) {
	input := writeTemp(t, "g.txt", pathGraph)
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown algorithm", []string{"draw", "prim", input}, errors.ErrCodeInvalidAlgorithm},
		{"missing file", []string{"draw", "bfs", filepath.Join(t.TempDir(), "nope.txt")}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"draw", "bfs", input, "-f", "gif", "-o", filepath.Join(t.TempDir(), "x.gif")}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRunCommandReplaysResult(t *testing.T) {
	input := writeTemp(t, "g.txt", pathGraph)
	result := writeTemp(t, "bfs.json", bfsJSON)
	dir := t.TempDir()
	out := filepath.Join(dir, "live.svg")
	frames := filepath.Join(dir, "frames")

	_, err := execute(t, "run", "bfs", input, "--result", result, "-o", out, "--frames", frames, "--interval", "1ms")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for i := 0; i <= 2; i++ {
		name := filepath.Join(frames, "frame-000"+string(rune('0'+i))+".svg")
		if _, err := os.Stat(name); err != nil {
			t.Errorf("frame %d missing: %v", i, err)
		}
	}
	last, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(last), `class="tree-edge"`); got != 2 {
		t.Errorf("final frame has %d tree edges, want 2", got)
	}
	for _, rank := range []string{">#0<", ">#1<", ">#2<"} {
		if !strings.Contains(string(last), rank) {
			t.Errorf("final frame missing %s", rank)
		}
	}
}

func TestRunCommandSolverErrorBody(t *testing.T) {
	input := writeTemp(t, "g.txt", pathGraph)
	result := writeTemp(t, "err.json", `{"error":"matrix must be square"}`)

	_, err := execute(t, "run", "bfs", input, "--result", result)
	if !errors.Is(err, errors.ErrCodeSolver) {
		t.Fatalf("err = %v, want solver error", err)
	}
	if got := errors.UserMessage(err); got != "Server error:\nmatrix must be square" {
		t.Errorf("message = %q", got)
	}
}

func TestTreeCommandDOT(t *testing.T) {
	input := writeTemp(t, "g.txt", pathGraph)
	result := writeTemp(t, "bfs.json", bfsJSON)
	out := filepath.Join(t.TempDir(), "tree.dot")

	if _, err := execute(t, "tree", input, "--result", result, "-f", "dot", "-o", out); err != nil {
		t.Fatalf("tree: %v", err)
	}
	dot, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), `n2 [label="2 (#2)"]`) {
		t.Errorf("unexpected DOT:\n%s", dot)
	}

	if _, err := execute(t, "tree", input, "-a", "hull", "--result", result); !errors.Is(err, errors.ErrCodeInvalidAlgorithm) {
		t.Errorf("hull tree: err = %v", err)
	}
}

func TestConfigCommands(t *testing.T) {
	out, err := execute(t, "config", "show", "--solver", "http://solver.test:9000")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, `solver_url = "http://solver.test:9000"`) {
		t.Errorf("config show output:\n%s", out)
	}

	out, err = execute(t, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), filepath.Join(appName, "config.toml")) {
		t.Errorf("config path = %q", out)
	}
}

func TestVerboseFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"-v", "config", "path"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v after -v, want debug", c.Logger.GetLevel())
	}
}

func TestBadConfigFile(t *testing.T) {
	cfg := writeTemp(t, "bad.toml", "interval = \"never\"\n")
	if _, err := execute(t, "--config", cfg, "config", "show"); err == nil {
		t.Error("bad config should fail before the command runs")
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range completionShells {
		out, err := execute(t, "completion", shell)
		if err != nil {
			t.Errorf("completion %s: %v", shell, err)
			continue
		}
		if !strings.Contains(out, appName) {
			t.Errorf("completion %s script does not mention %s", shell, appName)
		}
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, input, suffix, format, want string
	}{
		{"", "data/graph.txt", "", "svg", "graph.svg"},
		{"", "graph", "_tree", "png", "graph_tree.png"},
		{"custom.pdf", "graph.txt", "", "pdf", "custom.pdf"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.input, tt.suffix, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}
