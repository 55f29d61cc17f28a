package beautify

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mbforbes/beautyplot/pkg/errors"
)

// Default styling values.
const (
	NearBlack       = "#262626"
	MidGrey         = "#929292"
	Serif           = "serif"
	MajorTickLength = 6
	MinorTickLength = 4
	TickPad         = 7
	SpineWidth      = 0.5
)

// Theme holds every value the styling assigns. TextFont applies to the title
// and axis labels, NumberFont to tick labels.
type Theme struct {
	NearBlack       string  `toml:"near_black" json:"near_black"`
	MidGrey         string  `toml:"mid_grey" json:"mid_grey"`
	TextFont        string  `toml:"text_font" json:"text_font"`
	NumberFont      string  `toml:"number_font" json:"number_font"`
	MajorTickLength float64 `toml:"major_tick_length" json:"major_tick_length"`
	MinorTickLength float64 `toml:"minor_tick_length" json:"minor_tick_length"`
	TickPad         float64 `toml:"tick_pad" json:"tick_pad"`
	SpineWidth      float64 `toml:"spine_width" json:"spine_width"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		NearBlack:       NearBlack,
		MidGrey:         MidGrey,
		TextFont:        Serif,
		NumberFont:      Serif,
		MajorTickLength: MajorTickLength,
		MinorTickLength: MinorTickLength,
		TickPad:         TickPad,
		SpineWidth:      SpineWidth,
	}
}

// Validate checks colors, font names and sizes. Fields are checked in
// declaration order and the first failure is returned.
func (t Theme) Validate() error {
	colors := []struct{ name, v string }{
		{"near_black", t.NearBlack},
		{"mid_grey", t.MidGrey},
	}
	for _, c := range colors {
		if err := errors.ValidateColor(c.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTheme, err, "%s", c.name)
		}
	}
	fonts := []struct{ name, v string }{
		{"text_font", t.TextFont},
		{"number_font", t.NumberFont},
	}
	for _, f := range fonts {
		if err := errors.ValidateFontFamily(f.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTheme, err, "%s", f.name)
		}
	}
	sizes := []struct {
		name string
		v    float64
	}{
		{"major_tick_length", t.MajorTickLength},
		{"minor_tick_length", t.MinorTickLength},
		{"tick_pad", t.TickPad},
		{"spine_width", t.SpineWidth},
	}
	for _, s := range sizes {
		if s.v < 0 || math.IsNaN(s.v) || math.IsInf(s.v, 0) {
			return errors.New(errors.ErrCodeInvalidTheme, "%s must be a finite non-negative number, got %v", s.name, s.v)
		}
	}
	return nil
}

// Hash returns a stable digest of the theme, suitable as a cache key part.
func (t Theme) Hash() string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%q|%q|%q|%q|%g|%g|%g|%g",
		t.NearBlack, t.MidGrey, t.TextFont, t.NumberFont,
		t.MajorTickLength, t.MinorTickLength, t.TickPad, t.SpineWidth))
	return hex.EncodeToString(sum[:])
}

// Encode writes the theme as TOML.
func (t Theme) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(t)
}

// DecodeTheme reads TOML from r on top of the default theme and validates
// the result. Unknown keys are rejected.
func DecodeTheme(r io.Reader) (Theme, error) {
	t := DefaultTheme()
	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme keys: %s", strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadTheme reads a TOML theme file. An empty path returns the default theme.
func LoadTheme(path string) (Theme, error) {
	if path == "" {
		return DefaultTheme(), nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Theme{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme file %s", path)
	}
	if err != nil {
		return Theme{}, err
	}
	defer f.Close()

	t, err := DecodeTheme(f)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
