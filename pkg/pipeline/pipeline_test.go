package pipeline

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/cache"
	"github.com/mbforbes/beautyplot/pkg/errors"
	"github.com/mbforbes/beautyplot/pkg/observability"
)

const testSpec = `{
  "width": 200, "height": 150,
  "title": "Growth", "xlabel": "t", "ylabel": "v",
  "series": [{"label": "a", "x": [0, 1, 2, 3], "y": [0, 1, 4, 9]}]
}`

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateEngine(t *testing.T) {
	for _, e := range []string{"svg", "gochart"} {
		if err := ValidateEngine(e); err != nil {
			t.Errorf("ValidateEngine(%q) = %v", e, err)
		}
	}
	if err := ValidateEngine("cairo"); !errors.Is(err, errors.ErrCodeInvalidEngine) {
		t.Errorf("ValidateEngine(cairo) = %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := map[string][]string{
		"svg":              {"svg"},
		"svg,png":          {"svg", "png"},
		" SVG , png,,svg ": {"svg", "png"},
		"":                 nil,
	}
	for in, want := range tests {
		if got := ParseFormats(in); !reflect.DeepEqual(got, want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Spec: []byte(testSpec)}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(opts.Formats, []string{FormatSVG}) {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Engine != EngineSVG || opts.Scale != DefaultPNGScale || opts.Logger == nil {
		t.Errorf("defaults not applied: %+v", opts)
	}
	if opts.Theme != beautify.DefaultTheme() {
		t.Errorf("Theme = %+v", opts.Theme)
	}
}

func TestOptionsErrors(t *testing.T) {
	badTheme := beautify.DefaultTheme()
	badTheme.NearBlack = "black"

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no spec", Options{}, errors.ErrCodeInvalidInput},
		{"format", Options{Spec: []byte(testSpec), Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"engine", Options{Spec: []byte(testSpec), Engine: "cairo"}, errors.ErrCodeInvalidEngine},
		{"theme", Options{Spec: []byte(testSpec), Theme: badTheme}, errors.ErrCodeInvalidTheme},
		{"scale", Options{Spec: []byte(testSpec), Scale: -1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("got %v, want code %s", err, tt.code)
			}
		})
	}

	raw := Options{Spec: []byte(testSpec), Theme: badTheme, Raw: true}
	if err := raw.ValidateAndSetDefaults(); err != nil {
		t.Errorf("raw run should ignore the theme: %v", err)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Spec: []byte(testSpec)}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	k := cache.NewDefaultKeyer()
	styled := k.ArtifactKey("h", opts.ArtifactKeyOpts(FormatSVG))

	raw := opts
	raw.Raw = true
	if k.ArtifactKey("h", raw.ArtifactKeyOpts(FormatSVG)) == styled {
		t.Error("raw and styled artifacts share a key")
	}

	themed := opts
	themed.Theme.MidGrey = "#aaaaaa"
	if k.ArtifactKey("h", themed.ArtifactKeyOpts(FormatSVG)) == styled {
		t.Error("theme change did not change the key")
	}

	scaled := opts
	scaled.Scale = 3
	if k.ArtifactKey("h", scaled.ArtifactKeyOpts(FormatPNG)) == k.ArtifactKey("h", opts.ArtifactKeyOpts(FormatPNG)) {
		t.Error("png scale not part of the key")
	}
}

func TestBuildHashIgnoresWhitespace(t *testing.T) {
	_, h1, err := Build([]byte(testSpec))
	if err != nil {
		t.Fatal(err)
	}
	compact := strings.Join(strings.Fields(testSpec), "")
	_, h2, err := Build([]byte(compact))
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Error("whitespace changed the spec hash")
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Spec:    []byte(testSpec),
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	svg := string(res.Artifacts[FormatSVG])
	if !strings.Contains(svg, `stroke="#262626"`) || strings.Contains(svg, "spine-top") {
		t.Error("svg does not look beautified")
	}

	var snaps []map[string]any
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &snaps); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if len(snaps) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snaps))
	}
	if res.Cached() {
		t.Error("null cache reported a hit")
	}
	if res.Stats.AxesCount != 1 || res.Stats.Bytes == 0 {
		t.Errorf("stats = %+v", res.Stats)
	}
}

func TestExecuteRaw(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{Spec: []byte(testSpec), Raw: true})
	if err != nil {
		t.Fatal(err)
	}
	svg := string(res.Artifacts[FormatSVG])
	if !strings.Contains(svg, "spine-top") || strings.Contains(svg, "#262626") {
		t.Error("raw svg should keep the default look")
	}
}

func TestDecodeRejectsBeforeCacheLookup(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	_, err = r.Execute(context.Background(), Options{
		Spec:    []byte(`{"xlim": [-1e308, 1e308], "series": [{"x": [0, 1], "y": [0, 1]}]}`),
		Formats: []string{FormatSVG},
	})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Execute() error = %v, want INVALID_INPUT", err)
	}
}

func TestExecuteCacheHit(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	opts := Options{Spec: []byte(testSpec), Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached() {
		t.Fatal("first run reported cache hits")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached() {
		t.Errorf("second run CacheHits = %v", second.CacheHits)
	}
	if !reflect.DeepEqual(first.Artifacts, second.Artifacts) {
		t.Error("cached artifacts differ from rendered ones")
	}
	if second.Stats.RenderTime != 0 {
		t.Error("second run rendered")
	}
	if second.Stats.AxesCount != 0 {
		t.Error("second run built the figure")
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached() {
		t.Error("refresh run used the cache")
	}
}

func TestExecuteGoChart(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Spec:    []byte(testSpec),
		Engine:  EngineGoChart,
		Formats: []string{FormatSVG, FormatPNG},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(string(res.Artifacts[FormatSVG]), "<svg") {
		t.Error("gochart svg missing")
	}
	if !strings.HasPrefix(string(res.Artifacts[FormatPNG]), "\x89PNG") {
		t.Error("gochart png missing signature")
	}
}

func TestExecuteInvalidSpec(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Spec: []byte(`{"series": [{"x": [1], "y": [1, 2]}]}`)})
	if !errors.IsValidation(err) {
		t.Errorf("got %v, want a validation error", err)
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks

	mu                         sync.Mutex
	styles, renders, hits, set int
}

func (h *countingHooks) OnStyleComplete(context.Context, int, time.Duration, error) {
	h.mu.Lock()
	h.styles++
	h.mu.Unlock()
}

func (h *countingHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
	h.mu.Lock()
	h.renders++
	h.mu.Unlock()
}

func (h *countingHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	h.hits++
	h.mu.Unlock()
}

func (h *countingHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	h.set++
	h.mu.Unlock()
}

func TestExecuteHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	defer observability.Reset()

	fc, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(fc, nil, nil)
	opts := Options{Spec: []byte(testSpec), Formats: []string{FormatSVG, FormatJSON}}
	for i := 0; i < 2; i++ {
		if _, err := r.Execute(context.Background(), opts); err != nil {
			t.Fatal(err)
		}
	}
	if h.styles != 1 || h.renders != 2 || h.set != 2 || h.hits != 2 {
		t.Errorf("hooks: styles=%d renders=%d set=%d hits=%d", h.styles, h.renders, h.set, h.hits)
	}
}
