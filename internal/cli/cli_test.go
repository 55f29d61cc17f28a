package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/errors"
)

const chartJSON = `{
  "width": 320, "height": 240,
  "title": "Throughput", "xlabel": "workers", "ylabel": "req/s",
  "series": [{"label": "p50", "x": [1, 2, 4, 8], "y": [110, 205, 380, 610]}]
}`

func writeChart(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "throughput.json")
	if err := os.WriteFile(path, []byte(chartJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	root := New(os.Stderr, LogInfo).RootCommand()
	want := []string{"cache", "completion", "inspect", "render", "serve", "theme"}
	var got []string
	for _, c := range root.Commands() {
		if c.Name() != "help" {
			got = append(got, c.Name())
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("subcommands = %v, want %v", got, want)
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		formats []string
		want    map[string]string
	}{
		{"default", "charts/a.json", "", []string{"svg"}, map[string]string{"svg": "charts/a.svg"}},
		{"explicit single", "a.json", "out/fig.svg", []string{"svg"}, map[string]string{"svg": "out/fig.svg"}},
		{"base path", "a.json", "out/fig", []string{"svg", "png"}, map[string]string{"svg": "out/fig.svg", "png": "out/fig.png"}},
		{"base with ext", "a.json", "out/fig.svg", []string{"svg", "pdf"}, map[string]string{"svg": "out/fig.svg", "pdf": "out/fig.pdf"}},
		{"from input", "a.json", "", []string{"json", "svg"}, map[string]string{"json": "a.json", "svg": "a.svg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPaths(tt.input, tt.output, tt.formats); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("outputPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	in := writeChart(t)
	outBase := filepath.Join(t.TempDir(), "fig")

	if _, err := runCLI(t, "render", in, "--no-cache", "-f", "svg,json", "-o", outBase); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(outBase + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `font-family="serif"`) {
		t.Error("svg not styled")
	}
	if _, err := os.Stat(outBase + ".json"); err != nil {
		t.Errorf("json output missing: %v", err)
	}
}

func TestRenderCommandStdout(t *testing.T) {
	out, err := runCLI(t, "render", writeChart(t), "--no-cache", "--raw", "-o", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "<svg") && !strings.HasPrefix(out, "<?xml") {
		t.Errorf("stdout does not start with svg: %.40q", out)
	}
	if !strings.Contains(out, "spine-top") {
		t.Error("raw output should keep the top spine")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	in := writeChart(t)
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"format", []string{"render", in, "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"engine", []string{"render", in, "--engine", "cairo"}, errors.ErrCodeInvalidEngine},
		{"theme file", []string{"render", in, "--theme", filepath.Join(t.TempDir(), "missing.toml")}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append(tt.args, "--no-cache")...)
			if !errors.Is(err, tt.code) {
				t.Errorf("got %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := runCLI(t, "render", in, "--no-cache", "-f", "svg,json", "-o", "-"); err == nil {
		t.Error("stdout with two formats should fail")
	}
}

func TestInspectCommand(t *testing.T) {
	out, err := runCLI(t, "inspect", writeChart(t))
	if err != nil {
		t.Fatal(err)
	}
	var snaps []struct {
		Spines map[string]struct {
			Visible bool `json:"visible"`
		} `json:"spines"`
		Title struct {
			Color string `json:"color"`
		} `json:"title"`
	}
	if err := json.Unmarshal([]byte(out), &snaps); err != nil {
		t.Fatalf("inspect output: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("snapshots = %d", len(snaps))
	}
	if snaps[0].Spines["top"].Visible || !snaps[0].Spines["left"].Visible {
		t.Errorf("spines = %+v", snaps[0].Spines)
	}
	if snaps[0].Title.Color != beautify.NearBlack {
		t.Errorf("title color = %q", snaps[0].Title.Color)
	}
}

func TestThemeCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if _, err := runCLI(t, "theme", "init", path); err != nil {
		t.Fatalf("theme init: %v", err)
	}
	if _, err := runCLI(t, "theme", "init", path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("second init without --force: %v", err)
	}
	if _, err := runCLI(t, "theme", "init", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}

	loaded, err := beautify.LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded != beautify.DefaultTheme() {
		t.Errorf("written theme = %+v", loaded)
	}

	out, err := runCLI(t, "theme", "show", "--theme", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `near_black = "#262626"`) {
		t.Errorf("theme show output:\n%s", out)
	}
}
