package chartio

import (
	"encoding/json"
	"io"

	"github.com/mbforbes/beautyplot/pkg/figure"
)

// TextStyle is the styled state of a text object.
type TextStyle struct {
	Content string  `json:"content"`
	Color   string  `json:"color"`
	Family  string  `json:"family"`
	Size    float64 `json:"size"`
}

// SpineStyle is the styled state of a spine.
type SpineStyle struct {
	Visible bool    `json:"visible"`
	Width   float64 `json:"width"`
	Color   string  `json:"color"`
}

// TierStyle is the styled state of one tick tier.
type TierStyle struct {
	Direction string      `json:"direction"`
	Color     string      `json:"color"`
	Length    float64     `json:"length"`
	Width     float64     `json:"width"`
	Pad       float64     `json:"pad"`
	Values    []float64   `json:"values"`
	Labels    []TextStyle `json:"labels"`
}

// GridStyle is the styled state of an axis grid.
type GridStyle struct {
	Visible bool    `json:"visible"`
	Which   string  `json:"which"`
	Color   string  `json:"color"`
	Width   float64 `json:"width"`
}

// AxisStyle is the styled state of an axis.
type AxisStyle struct {
	Label  TextStyle `json:"label"`
	Ticks  string    `json:"ticks"`
	Limits []float64 `json:"limits"`
	Major  TierStyle `json:"major"`
	Minor  TierStyle `json:"minor"`
	Grid   GridStyle `json:"grid"`
}

// AxesSnapshot captures every styled attribute of an axes.
type AxesSnapshot struct {
	Title  TextStyle             `json:"title"`
	Spines map[string]SpineStyle `json:"spines"`
	X      AxisStyle             `json:"x"`
	Y      AxisStyle             `json:"y"`
}

// Snapshot captures the styled state of ax.
func Snapshot(ax *figure.Axes) AxesSnapshot {
	s := AxesSnapshot{
		Title:  textStyle(ax.Title),
		Spines: make(map[string]SpineStyle, len(figure.Sides)),
		X:      axisStyle(ax.XAxis, "bottom", "top"),
		Y:      axisStyle(ax.YAxis, "left", "right"),
	}
	for _, sp := range ax.Spines() {
		s.Spines[sp.Side.String()] = SpineStyle{Visible: sp.Visible, Width: sp.Width, Color: sp.Color}
	}
	return s
}

// WriteSnapshot encodes snapshots of every axes in fig as indented JSON.
func WriteSnapshot(w io.Writer, fig *figure.Figure) error {
	axes := fig.Axes()
	out := make([]AxesSnapshot, len(axes))
	for i, ax := range axes {
		out[i] = Snapshot(ax)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func textStyle(t *figure.Text) TextStyle {
	return TextStyle{Content: t.Content, Color: t.Color, Family: t.Family, Size: t.Size}
}

func axisStyle(a *figure.Axis, low, high string) AxisStyle {
	return AxisStyle{
		Label:  textStyle(a.Label),
		Ticks:  positionName(a.Position, low, high),
		Limits: []float64{a.Min, a.Max},
		Major:  tierStyle(a.Major),
		Minor:  tierStyle(a.Minor),
		Grid: GridStyle{
			Visible: a.Grid.Visible,
			Which:   a.Grid.Which.String(),
			Color:   a.Grid.Color,
			Width:   a.Grid.Width,
		},
	}
}

func tierStyle(s *figure.TickSet) TierStyle {
	t := TierStyle{
		Direction: string(s.Params.Direction),
		Color:     s.Params.Color,
		Length:    s.Params.Length,
		Width:     s.Params.Width,
		Pad:       s.Params.Pad,
		Values:    make([]float64, len(s.Ticks)),
		Labels:    make([]TextStyle, len(s.Ticks)),
	}
	for i, tk := range s.Ticks {
		t.Values[i] = tk.Value
		t.Labels[i] = textStyle(tk.Label)
	}
	return t
}

func positionName(p figure.TickPosition, low, high string) string {
	switch p {
	case figure.TicksBoth:
		return "both"
	case figure.TicksLow:
		return low
	case figure.TicksHigh:
		return high
	}
	return "none"
}
