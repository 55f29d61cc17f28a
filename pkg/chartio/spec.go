package chartio

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mbforbes/beautyplot/pkg/errors"
	"github.com/mbforbes/beautyplot/pkg/figure"
)

// Spec is the decoded form of a chart description.
type Spec struct {
	Width  float64   `json:"width,omitempty"`
	Height float64   `json:"height,omitempty"`
	Title  string    `json:"title,omitempty"`
	XLabel string    `json:"xlabel,omitempty"`
	YLabel string    `json:"ylabel,omitempty"`
	XLim   []float64 `json:"xlim,omitempty"`
	YLim   []float64 `json:"ylim,omitempty"`
	XTicks *Ticks    `json:"xticks,omitempty"`
	YTicks *Ticks    `json:"yticks,omitempty"`
	GridX  bool      `json:"grid_x,omitempty"`
	Series []Series  `json:"series"`
}

// Ticks overrides tick placement for one axis. AutoMinor subdivides each
// major interval into that many parts and is ignored when Minor is set.
type Ticks struct {
	Major     []float64 `json:"major,omitempty"`
	Minor     []float64 `json:"minor,omitempty"`
	AutoMinor int       `json:"auto_minor,omitempty"`
}

// Series is one plotted line.
type Series struct {
	Label string    `json:"label,omitempty"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Color string    `json:"color,omitempty"`
	Width float64   `json:"width,omitempty"`
	Dash  []float64 `json:"dash,omitempty"`
}

// Read decodes a chart spec from r and validates it. Read does not close r.
func Read(r io.Reader) (*Spec, error) {
	var s Spec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode chart spec")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadFile opens path and decodes it with [Read].
func ReadFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart spec %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// MaxMagnitude bounds every limit and data value so that padded axis ranges
// stay finite.
const MaxMagnitude = 1e300

func inRange(v float64) bool { return math.Abs(v) <= MaxMagnitude }

// Validate checks series shapes, colors, data values and limits.
func (s *Spec) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must not be negative")
	}
	if len(s.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "chart spec has no series")
	}
	for i, ser := range s.Series {
		if len(ser.X) == 0 || len(ser.X) != len(ser.Y) {
			return errors.New(errors.ErrCodeInvalidInput,
				"series %d: x and y must be non-empty and equal length (got %d, %d)", i, len(ser.X), len(ser.Y))
		}
		if ser.Color != "" {
			if err := errors.ValidateColor(ser.Color); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "series %d", i)
			}
		}
		if ser.Width < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "series %d: negative width", i)
		}
		for j := range ser.X {
			if !inRange(ser.X[j]) || !inRange(ser.Y[j]) {
				return errors.New(errors.ErrCodeInvalidInput,
					"series %d point %d: (%v, %v) is not finite or exceeds ±%g", i, j, ser.X[j], ser.Y[j], MaxMagnitude)
			}
		}
	}
	for name, lim := range map[string][]float64{"xlim": s.XLim, "ylim": s.YLim} {
		if lim == nil {
			continue
		}
		if len(lim) != 2 || !(lim[0] < lim[1]) {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be [min, max] with min < max, got %v", name, lim)
		}
		if !inRange(lim[0]) || !inRange(lim[1]) {
			return errors.New(errors.ErrCodeInvalidInput, "%s %v is not finite or exceeds ±%g", name, lim, MaxMagnitude)
		}
	}
	return nil
}

// Build creates a figure with a single current axes holding the spec's data.
func (s *Spec) Build() (*figure.Figure, error) {
	fig := figure.New(s.Width, s.Height)
	ax := fig.AddAxes()

	for i, ser := range s.Series {
		opts := []figure.LineOption{figure.LineLabel(ser.Label)}
		if ser.Color != "" {
			opts = append(opts, figure.LineColor(ser.Color))
		}
		if ser.Width > 0 {
			opts = append(opts, figure.LineWidth(ser.Width))
		}
		if len(ser.Dash) > 0 {
			opts = append(opts, figure.LineDash(ser.Dash...))
		}
		if _, err := ax.Plot(ser.X, ser.Y, opts...); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "series %d", i)
		}
	}

	if s.XLim != nil {
		if err := ax.SetXLim(s.XLim[0], s.XLim[1]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "xlim")
		}
	}
	if s.YLim != nil {
		if err := ax.SetYLim(s.YLim[0], s.YLim[1]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "ylim")
		}
	}
	applyTicks(ax.XAxis, s.XTicks)
	applyTicks(ax.YAxis, s.YTicks)

	ax.SetTitle(s.Title)
	ax.SetXLabel(s.XLabel)
	ax.SetYLabel(s.YLabel)
	if s.GridX {
		ax.Grid(figure.SelectX)
	}
	return fig, nil
}

func applyTicks(a *figure.Axis, t *Ticks) {
	if t == nil {
		return
	}
	if t.Major != nil {
		a.SetMajorLocator(figure.FixedLocator{Values: t.Major})
	}
	switch {
	case t.Minor != nil:
		a.SetMinorLocator(figure.FixedLocator{Values: t.Minor})
	case t.AutoMinor > 0:
		a.SetMinorLocator(figure.AutoMinorLocator{N: t.AutoMinor})
	}
}
