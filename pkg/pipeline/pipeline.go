// Package pipeline turns a chart spec into rendered artifacts:
//
//  1. Build: decode the JSON spec into a figure
//  2. Style: run the beautify styler on every axes (skipped with Raw)
//  3. Render: produce each requested format with the chosen engine
//
// A [Runner] wraps the stages with an artifact cache so the CLI and the HTTP
// service share the same behavior:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Spec:    data,
//	    Formats: []string{"svg", "png"},
//	})
//	svg := res.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/cache"
	"github.com/mbforbes/beautyplot/pkg/errors"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Render engines. EngineSVG is the built-in SVG writer (PNG and PDF go
// through rsvg-convert); EngineGoChart draws with go-chart.
const (
	EngineSVG     = "svg"
	EngineGoChart = "gochart"
)

// DefaultPNGScale is the rsvg-convert zoom used for PNG output.
const DefaultPNGScale = 2.0

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// ValidEngines lists the supported render engines.
var ValidEngines = []string{EngineSVG, EngineGoChart}

// Options configures one pipeline run.
type Options struct {
	// Spec is the raw chart spec JSON.
	Spec []byte `json:"-"`

	// Theme drives the styler. The zero value means the default theme.
	Theme beautify.Theme `json:"theme"`

	Formats []string `json:"formats,omitempty"`
	Engine  string   `json:"engine,omitempty"`

	// Raw skips styling and renders the figure with its default look.
	Raw bool `json:"raw,omitempty"`

	// Scale is the PNG zoom for the svg engine.
	Scale float64 `json:"scale,omitempty"`

	// FontPath is a TTF used for text by the gochart engine.
	FontPath string `json:"-"`

	// Refresh ignores cached artifacts but still stores new ones.
	Refresh bool `json:"-"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of a run.
type Result struct {
	// SpecHash identifies the decoded spec, independent of whitespace.
	SpecHash string

	// Artifacts maps format to bytes.
	Artifacts map[string][]byte

	// CacheHits records, per format, whether the artifact came from cache.
	CacheHits map[string]bool

	Stats Stats
}

// Cached reports whether every artifact came from cache.
func (r *Result) Cached() bool {
	if len(r.CacheHits) == 0 {
		return false
	}
	for _, hit := range r.CacheHits {
		if !hit {
			return false
		}
	}
	return true
}

// Stats are timings and sizes for a run. StyleTime and RenderTime are zero
// when everything came from cache.
type Stats struct {
	AxesCount  int
	StyleTime  time.Duration
	RenderTime time.Duration
	Bytes      int
}

// ValidateFormat checks a single format name.
func ValidateFormat(format string) error {
	return errors.ValidateOneOf(errors.ErrCodeInvalidFormat, "format", format, ValidFormats...)
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks an engine name.
func ValidateEngine(engine string) error {
	return errors.ValidateOneOf(errors.ErrCodeInvalidEngine, "engine", engine, ValidEngines...)
}

// ParseFormats splits a comma-separated list, trimming blanks and dropping
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// ValidateAndSetDefaults fills defaults and validates. Calling it again is
// a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Spec) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "chart spec is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Engine == "" {
		o.Engine = EngineSVG
	}
	if o.Theme == (beautify.Theme{}) {
		o.Theme = beautify.DefaultTheme()
	}
	if o.Scale == 0 {
		o.Scale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if !o.Raw {
		if err := o.Theme.Validate(); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns the cache key parts for format. The theme only
// counts when it is applied.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Engine: o.Engine, Raw: o.Raw}
	if !o.Raw {
		k.ThemeHash = o.Theme.Hash()
	}
	if format == FormatPNG && o.Engine == EngineSVG {
		k.Engine = strings.Join([]string{o.Engine, formatScale(o.Scale)}, "@")
	}
	if o.Engine == EngineGoChart && o.FontPath != "" {
		k.Engine += "+" + cache.Hash([]byte(o.FontPath))[:12]
	}
	return k
}
