package beautify

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mbforbes/beautyplot/pkg/errors"
)

func TestDefaultTheme(t *testing.T) {
	got := DefaultTheme()
	want := Theme{
		NearBlack:       "#262626",
		MidGrey:         "#929292",
		TextFont:        "serif",
		NumberFont:      "serif",
		MajorTickLength: 6,
		MinorTickLength: 4,
		TickPad:         7,
		SpineWidth:      0.5,
	}
	if got != want {
		t.Errorf("DefaultTheme() = %+v, want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("default theme should validate: %v", err)
	}
}

func TestThemeValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Theme)
	}{
		{"bad near black", func(t *Theme) { t.NearBlack = "#12" }},
		{"bad mid grey", func(t *Theme) { t.MidGrey = "" }},
		{"empty text font", func(t *Theme) { t.TextFont = "" }},
		{"injected number font", func(t *Theme) { t.NumberFont = "serif;}" }},
		{"negative tick length", func(t *Theme) { t.MajorTickLength = -1 }},
		{"negative spine width", func(t *Theme) { t.SpineWidth = -0.5 }},
		{"infinite tick pad", func(t *Theme) { t.TickPad = math.Inf(1) }},
		{"nan spine width", func(t *Theme) { t.SpineWidth = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := DefaultTheme()
			tt.mutate(&theme)
			if err := theme.Validate(); !errors.Is(err, errors.ErrCodeInvalidTheme) {
				t.Errorf("Validate() error = %v, want INVALID_THEME", err)
			}
		})
	}
}

func TestThemeValidateReportsFirstField(t *testing.T) {
	theme := DefaultTheme()
	theme.NearBlack = "black"
	theme.MidGrey = "grey"
	theme.TextFont = ""
	theme.NumberFont = ""

	for i := 0; i < 20; i++ {
		err := theme.Validate()
		if err == nil || !strings.Contains(err.Error(), "near_black") {
			t.Fatalf("Validate() error = %v, want it to name near_black", err)
		}
	}

	theme.NearBlack = NearBlack
	theme.MidGrey = MidGrey
	if err := theme.Validate(); err == nil || !strings.Contains(err.Error(), "text_font") {
		t.Errorf("Validate() error = %v, want it to name text_font", err)
	}
}

func TestDecodeThemePartial(t *testing.T) {
	theme, err := DecodeTheme(strings.NewReader(`
near_black = "#1a1a1a"
tick_pad = 9.0
`))
	if err != nil {
		t.Fatalf("DecodeTheme() error: %v", err)
	}
	if theme.NearBlack != "#1a1a1a" || theme.TickPad != 9 {
		t.Errorf("overrides not applied: %+v", theme)
	}
	if theme.MidGrey != MidGrey || theme.TextFont != Serif {
		t.Errorf("defaults not kept: %+v", theme)
	}
}

func TestDecodeThemeRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown key", `colour = "#000000"`},
		{"invalid color", `mid_grey = "silver"`},
		{"syntax", `near_black = `},
		{"infinite length", `major_tick_length = inf`},
		{"nan width", `spine_width = nan`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTheme(strings.NewReader(tt.in)); !errors.Is(err, errors.ErrCodeInvalidTheme) {
				t.Errorf("DecodeTheme() error = %v, want INVALID_THEME", err)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	theme := DefaultTheme()
	theme.TextFont = "Georgia"

	var buf bytes.Buffer
	if err := theme.Encode(&buf); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(buf.String(), `text_font = "Georgia"`) {
		t.Errorf("encoded theme missing text_font:\n%s", buf.String())
	}

	got, err := DecodeTheme(&buf)
	if err != nil {
		t.Fatalf("DecodeTheme() error: %v", err)
	}
	if got != theme {
		t.Errorf("decoded = %+v, want %+v", got, theme)
	}
}

func TestLoadTheme(t *testing.T) {
	if theme, err := LoadTheme(""); err != nil || theme != DefaultTheme() {
		t.Errorf("LoadTheme(\"\") = %+v, %v", theme, err)
	}

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`number_font = "monospace"`), 0o644); err != nil {
		t.Fatal(err)
	}
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() error: %v", err)
	}
	if theme.NumberFont != "monospace" {
		t.Errorf("NumberFont = %q, want monospace", theme.NumberFont)
	}

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadTheme(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestThemeHash(t *testing.T) {
	a := DefaultTheme()
	b := DefaultTheme()
	if a.Hash() != b.Hash() {
		t.Error("Hash should be deterministic")
	}
	b.TickPad = 8
	if a.Hash() == b.Hash() {
		t.Error("different themes should hash differently")
	}
	if len(a.Hash()) != 64 {
		t.Errorf("Hash length = %d, want 64", len(a.Hash()))
	}
}

func TestLoadExampleTheme(t *testing.T) {
	th, err := LoadTheme(filepath.Join("..", "..", "examples", "charts", "theme.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if th.NumberFont != "sans-serif" || th.SpineWidth != 0.8 {
		t.Errorf("theme = %+v", th)
	}
	if th.TextFont != Serif || th.NearBlack != NearBlack {
		t.Errorf("unset keys should match defaults, got %+v", th)
	}
}
